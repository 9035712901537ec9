package database

import (
	"context"
	"fmt"
	"log"

	"github.com/creatorbridge/api/ent"
	_ "github.com/lib/pq"
)

// Client holds the database client
type Client struct {
	Ent *ent.Client
}

// NewClient opens a Postgres connection and applies schema migrations.
func NewClient(databaseURL string) (*Client, error) {
	client, err := ent.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed opening connection to postgres: %w", err)
	}

	if err := client.Schema.Create(context.Background()); err != nil {
		return nil, fmt.Errorf("failed creating schema resources: %w", err)
	}

	log.Println("✅ Database connected and migrations applied")

	return &Client{
		Ent: client,
	}, nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.Ent.Close()
}

// Ping checks if the database is reachable
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Ent.User.Query().Limit(1).Count(ctx)
	return err
}
