package adapters

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"generate-reel-service/application/ports/outbound"
)

// randomSource backs storyboard generation with ambient randomness. The
// top-level rand functions are safe for concurrent handlers.
type randomSource struct{}

func NewRandomSource() outbound.RandomSourcePort {
	return &randomSource{}
}

func (randomSource) Intn(n int) int {
	return rand.Intn(n)
}

func (randomSource) Token() string {
	return strings.Split(uuid.NewString(), "-")[0]
}
