package devserver

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// OpenDB opens the dev platform database, creating the schema and seeding a
// small tactical-gear catalog plus demo accounts when empty.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS dealers(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  company_name TEXT NOT NULL,
  contact_name TEXT NOT NULL,
  phone TEXT,
  password_hash TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'PENDING' CHECK (status IN ('PENDING','APPROVED')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_dealers_email ON dealers(LOWER(email));

-- Bearer tokens for both identity kinds.
CREATE TABLE IF NOT EXISTS tokens(
  token TEXT PRIMARY KEY,
  kind TEXT NOT NULL CHECK (kind IN ('user','dealer')),
  account_id TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_tokens_account ON tokens(account_id);

CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  image_url TEXT
);

CREATE TABLE IF NOT EXISTS brands(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  logo_url TEXT
);

CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  category TEXT NOT NULL,
  brand TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  original_price NUMERIC,
  image_url TEXT,
  features_json TEXT,
  rating NUMERIC NOT NULL DEFAULT 0,
  review_count INTEGER NOT NULL DEFAULT 0,
  in_stock INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_brand    ON products(brand);

-- One cart per user; lines snapshot the product at add time.
CREATE TABLE IF NOT EXISTS cart_items(
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  price_at_add NUMERIC NOT NULL,
  name_at_add TEXT NOT NULL,
  image_at_add TEXT,
  created_at TEXT,
  updated_at TEXT,
  PRIMARY KEY (user_id, product_id)
);

CREATE TABLE IF NOT EXISTS quotes(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  status TEXT NOT NULL DEFAULT 'PENDING',
  project_name TEXT NOT NULL,
  intended_use TEXT NOT NULL,
  delivery_date TEXT,
  delivery_address TEXT NOT NULL,
  billing_address TEXT NOT NULL,
  company_size TEXT,
  budget_range TEXT,
  additional_requirements TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_quotes_user ON quotes(user_id);

CREATE TABLE IF NOT EXISTS quote_items(
  quote_id TEXT NOT NULL REFERENCES quotes(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL,
  name TEXT NOT NULL,
  qty INTEGER NOT NULL,
  unit_price NUMERIC NOT NULL,
  PRIMARY KEY (quote_id, product_id)
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog and accounts")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO categories(id,name,description,image_url) VALUES
	  ('body-armor','Body Armor','Plate carriers and ballistic protection','/img/cat-armor.jpg'),
	  ('apparel','Tactical Apparel','Combat uniforms and duty wear','/img/cat-apparel.jpg'),
	  ('optics','Optics','Sights, scopes and night vision','/img/cat-optics.jpg'),
	  ('footwear','Footwear','Duty and field boots','/img/cat-footwear.jpg')`)

	tx.MustExec(`INSERT INTO brands(id,name,logo_url) VALUES
	  ('vanguard','Vanguard Defense','/img/brand-vanguard.png'),
	  ('ridgeline','Ridgeline Gear','/img/brand-ridgeline.png'),
	  ('nocturne','Nocturne Optics','/img/brand-nocturne.png')`)

	tx.MustExec(`INSERT INTO products(id,name,description,category,brand,price,original_price,image_url,features_json,rating,review_count,in_stock) VALUES
	  ('pc-100','Modular Plate Carrier','Laser-cut MOLLE carrier, fits 10x12 plates','body-armor','vanguard',289.00,349.00,'/img/pc-100.jpg','["Laser-cut MOLLE","Quick-release buckles"]',4.7,212,1),
	  ('ba-220','Level IIIA Soft Panel','NIJ 0101.06 certified soft armor insert','body-armor','vanguard',199.00,NULL,'/img/ba-220.jpg','["NIJ certified","5-year warranty"]',4.8,98,1),
	  ('bt-550','All-Terrain Duty Boot','Waterproof 8-inch side-zip boot','footwear','ridgeline',154.95,NULL,'/img/bt-550.jpg','["Waterproof membrane","Side zip"]',4.5,431,1),
	  ('op-310','4x Prism Sight','Illuminated etched reticle, picatinny mount','optics','nocturne',449.00,529.00,'/img/op-310.jpg','["Etched reticle","IPX7 sealed"]',4.6,77,1),
	  ('ap-410','Ripstop Combat Shirt','Flame-resistant torso, stretch sleeves','apparel','ridgeline',89.50,NULL,'/img/ap-410.jpg','["FR rated","Articulated elbows"]',4.3,156,1)`)

	hash := func(pw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(pw), 12)
		return string(h)
	}

	tx.MustExec(`INSERT INTO users(id,email,name,password_hash) VALUES (?,?,?,?)`,
		"u-morgan", "morgan@tacgear.test", "Morgan Reyes", hash("Passw0rd1"))
	tx.MustExec(`INSERT INTO dealers(id,email,company_name,contact_name,phone,password_hash,status) VALUES (?,?,?,?,?,?,?)`,
		"d-apex", "procurement@apexsecurity.test", "Apex Security LLC", "Sam Okafor", "+1 555 010 4477", hash("Passw0rd1"), "APPROVED")
	tx.MustExec(`INSERT INTO dealers(id,email,company_name,contact_name,phone,password_hash,status) VALUES (?,?,?,?,?,?,?)`,
		"d-north", "buyer@northwatch.test", "Northwatch Patrol Co", "Lee Akana", "+1 555 010 9920", hash("Passw0rd1"), "PENDING")

	return tx.Commit()
}
