package resource

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const (
	upsertResourceQuery = `INSERT INTO learning_resources (language, level, title, type, url, free, description)
VALUES (:language, :level, :title, :type, :url, :free, :description)
ON DUPLICATE KEY UPDATE title = VALUES(title), type = VALUES(type), free = VALUES(free), description = VALUES(description)`

	upsertChatbotQuery = `INSERT INTO chatbots (language, name, description, model)
VALUES (:language, :name, :description, :model)
ON DUPLICATE KEY UPDATE description = VALUES(description), model = VALUES(model)`
)

// DBRepository implements Repository using MySQL
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) FindResources(ctx context.Context, language string, level Level) ([]Resource, error) {
	resources := []Resource{}
	if err := r.db.SelectContext(ctx, &resources,
		`SELECT language, level, title, type, url, free, description
		FROM learning_resources WHERE language = ? AND level = ? ORDER BY id`,
		language, level,
	); err != nil {
		return nil, fmt.Errorf("db.SelectContext(learning_resources) > %w", err)
	}
	return resources, nil
}

func (r *DBRepository) FindChatbots(ctx context.Context, language string) ([]Chatbot, error) {
	chatbots := []Chatbot{}
	if err := r.db.SelectContext(ctx, &chatbots,
		"SELECT language, name, description, model FROM chatbots WHERE language = ? ORDER BY id",
		language,
	); err != nil {
		return nil, fmt.Errorf("db.SelectContext(chatbots) > %w", err)
	}
	return chatbots, nil
}

// UpsertResource inserts a resource or updates the one with the same language, level and URL
func (r *DBRepository) UpsertResource(ctx context.Context, resource Resource) error {
	_, err := r.db.NamedExecContext(ctx, upsertResourceQuery, resource)
	if err != nil {
		return fmt.Errorf("db.NamedExecContext(upsert learning_resource) > %w", err)
	}
	return nil
}

// UpsertChatbot inserts a chatbot or updates the one with the same language and name
func (r *DBRepository) UpsertChatbot(ctx context.Context, chatbot Chatbot) error {
	_, err := r.db.NamedExecContext(ctx, upsertChatbotQuery, chatbot)
	if err != nil {
		return fmt.Errorf("db.NamedExecContext(upsert chatbot) > %w", err)
	}
	return nil
}

// Seed upserts every resource and chatbot of a catalog in one transaction
func (r *DBRepository) Seed(ctx context.Context, catalog *CatalogRepository) (int, error) {
	resources, chatbots := catalog.All()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("db.BeginTxx > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, resource := range resources {
		if _, err := tx.NamedExecContext(ctx, upsertResourceQuery, resource); err != nil {
			return 0, fmt.Errorf("tx.NamedExecContext(learning_resource %s) > %w", resource.URL, err)
		}
	}
	for _, chatbot := range chatbots {
		if _, err := tx.NamedExecContext(ctx, upsertChatbotQuery, chatbot); err != nil {
			return 0, fmt.Errorf("tx.NamedExecContext(chatbot %s) > %w", chatbot.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("tx.Commit > %w", err)
	}
	return len(resources) + len(chatbots), nil
}
