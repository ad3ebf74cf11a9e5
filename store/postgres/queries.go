package postgres

// Schema, applied on connect. Items live in a JSONB column; an order is
// written once and only its status changes afterwards, so there is nothing
// to normalize into a separate table.
const schemaSQL = `
	CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price DOUBLE PRECISION NOT NULL,
		category TEXT NOT NULL,
		image TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		table_id TEXT NOT NULL,
		customer_name TEXT NOT NULL DEFAULT '',
		items JSONB,
		total DOUBLE PRECISION NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_orders_table ON orders (table_id, status);

	CREATE TABLE IF NOT EXISTS company_settings (
		id INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		trade_name TEXT NOT NULL DEFAULT '',
		legal_name TEXT NOT NULL DEFAULT '',
		tax_id TEXT NOT NULL DEFAULT '',
		state_registration TEXT NOT NULL DEFAULT '',
		street TEXT NOT NULL DEFAULT '',
		number TEXT NOT NULL DEFAULT '',
		neighborhood TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT ''
	);`

// Menu queries
const (
	getMenuSQL = `
		SELECT id, name, description, price, category, image
		FROM menu_items ORDER BY category, name`

	insertMenuItemSQL = `
		INSERT INTO menu_items (id, name, description, price, category, image)
		VALUES ($1, $2, $3, $4, $5, $6)`

	updateMenuItemSQL = `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, category = $5, image = $6
		WHERE id = $1`

	deleteMenuItemSQL = `DELETE FROM menu_items WHERE id = $1`
)

// User queries
const (
	getUsersSQL = `
		SELECT id, name, email, password, role, status, created_at, updated_at
		FROM users ORDER BY created_at ASC`

	insertUserSQL = `
		INSERT INTO users (id, name, email, password, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at`

	updateUserSQL = `
		UPDATE users
		SET name = $2, email = $3, password = $4, role = $5, status = $6, updated_at = NOW()
		WHERE id = $1`

	deleteUserSQL = `DELETE FROM users WHERE id = $1`

	getUserByEmailSQL = `
		SELECT id, name, email, password, role, status, created_at, updated_at
		FROM users WHERE email = $1`
)

// Order queries
const (
	insertOrderSQL = `
		INSERT INTO orders (id, table_id, customer_name, items, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	getOrdersSQL = `
		SELECT id, table_id, customer_name, items, total, status, created_at
		FROM orders ORDER BY created_at ASC`

	updateOrderStatusSQL = `UPDATE orders SET status = $2 WHERE id = $1`
)

// Company settings queries
const (
	getCompanySQL = `
		SELECT trade_name, legal_name, tax_id, state_registration,
			   street, number, neighborhood, city, state
		FROM company_settings WHERE id = 1`

	saveCompanySQL = `
		INSERT INTO company_settings
			(id, trade_name, legal_name, tax_id, state_registration,
			 street, number, neighborhood, city, state)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			trade_name = $1, legal_name = $2, tax_id = $3,
			state_registration = $4, street = $5, number = $6,
			neighborhood = $7, city = $8, state = $9`
)
