package handlers

import (
	"tacgear/internal/api"
	"tacgear/internal/session"
)

type Deps struct {
	UserAuth       *IdentityHandler
	DealerAuth     *IdentityHandler
	CartHandler    *CartHandler
	QuoteHandler   *QuoteHandler
	CatalogHandler *CatalogHandler
}

func NewDeps(sessions *session.Manager, client *api.Client) *Deps {
	return &Deps{
		UserAuth:       &IdentityHandler{Kind: api.KindUser, Sessions: sessions},
		DealerAuth:     &IdentityHandler{Kind: api.KindDealer, Sessions: sessions},
		CartHandler:    &CartHandler{Sessions: sessions},
		QuoteHandler:   &QuoteHandler{Sessions: sessions},
		CatalogHandler: &CatalogHandler{API: client},
	}
}
