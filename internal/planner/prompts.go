package planner

import (
	"fmt"

	"github.com/dsa-sprint/backend/internal/models"
)

// SystemInstruction enumerates the hard constraints for sprint
// generation. The exact-total-minutes rule lives here as a prompt
// instruction only; the proxy never recomputes or corrects totals.
func SystemInstruction(minutes int) string {
	return fmt.Sprintf(`You are a strict DSA coach.
Generate a practical, logic-focused study plan for today.
Rules:
- Total minutes must exactly match %d.
- The sum of block minutes must equal the total.
- Output ONLY valid JSON.
- No markdown formatting.`, minutes)
}

// UserPrompt embeds the request parameters.
func UserPrompt(req models.PlanRequest) string {
	return fmt.Sprintf(`Create a plan for:
- Topic: %s
- Level: %s
- Time: %d minutes`, req.Topic, req.Level, req.MinutesAvailable)
}
