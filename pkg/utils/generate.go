package utils

import (
	"fmt"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// RewardName derives the reward description from the points milestone reached.
func RewardName(points int) string {
	return fmt.Sprintf("Reward for %d points", points)
}
