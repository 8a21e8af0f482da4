package idgen

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Generator hands out run IDs that tie one invocation's logs to the
// X-Request-ID it sends upstream.
type Generator interface {
	NextRunID() RunID
}

type RunID int64

func (id RunID) String() string {
	return snowflake.ID(id).String()
}

type SnowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewSnowflakeGenerator initializes a new ID generator.
// nodeID must be in 0-1023; hosts booking from the same account should use distinct IDs.
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}

	return &SnowflakeGenerator{
		node: node,
	}, nil
}

func (g *SnowflakeGenerator) NextRunID() RunID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return RunID(g.node.Generate().Int64())
}
