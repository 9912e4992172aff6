// Package idgen produces collision-free product identifiers.
package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

const (
	StrategyUUID      = "uuid"
	StrategySnowflake = "snowflake"
)

type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

func NewUUID() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

type snowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflake returns time-ordered IDs that stay unique for repeated calls within one millisecond.
func NewSnowflake(node int64) (Generator, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("snowflake.NewNode: %w", err)
	}

	return snowflakeGenerator{node: n}, nil
}

func (g snowflakeGenerator) NewID() string {
	return g.node.Generate().String()
}

func New(strategy string, node int64) (Generator, error) {
	switch strategy {
	case "", StrategyUUID:
		return NewUUID(), nil
	case StrategySnowflake:
		return NewSnowflake(node)
	default:
		return nil, fmt.Errorf("unknown id strategy[%s]", strategy)
	}
}
