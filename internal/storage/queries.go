package storage

var setupStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS vector`,

	`CREATE TABLE IF NOT EXISTS products (
		id          integer PRIMARY KEY,
		title       text NOT NULL,
		description text NOT NULL,
		price       numeric(10,2) NOT NULL,
		category    text NOT NULL,
		brand       text,
		image_url   text,
		content     text NOT NULL,
		embedding   vector(1536)
	)`,

	`CREATE TABLE IF NOT EXISTS materials (
		id              integer PRIMARY KEY,
		ea_number       text NOT NULL,
		name            text NOT NULL,
		description     text NOT NULL,
		category        text NOT NULL,
		specs           jsonb NOT NULL,
		time_estimation numeric(10,2) NOT NULL,
		price           numeric(10,2) NOT NULL,
		embedding       vector(1536)
	)`,

	`CREATE INDEX IF NOT EXISTS products_embedding_idx
		ON products USING hnsw (embedding vector_cosine_ops)`,

	`CREATE INDEX IF NOT EXISTS materials_embedding_idx
		ON materials USING hnsw (embedding vector_cosine_ops)`,
}

const (
	deleteAllProductsQuery  = `DELETE FROM products`
	deleteAllMaterialsQuery = `DELETE FROM materials`

	insertProductQuery = `
		INSERT INTO products (id, title, description, price, category, brand, image_url, content, embedding)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`

	insertMaterialQuery = `
		INSERT INTO materials (id, ea_number, name, description, category, specs, time_estimation, price, embedding)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`

	countProductsQuery  = `SELECT COUNT(*) FROM products WHERE embedding IS NOT NULL`
	countMaterialsQuery = `SELECT COUNT(*) FROM materials WHERE embedding IS NOT NULL`
)
