package evaluator

import (
	"fmt"

	"github.com/dsa-sprint/backend/internal/models"
)

// SystemInstruction sets the strict-evaluator role.
func SystemInstruction() string {
	return `You are a strict coding-interview evaluator.
Grade the candidate's answer against the problem exactly as an interviewer would.
Rules:
- Score from 0 to 10. Reserve 9-10 for answers that are correct, complete, and optimal.
- List concrete mistakes, not generic advice.
- Describe the ideal approach, including time and space complexity.
- Output ONLY valid JSON.
- No markdown formatting.`
}

// UserPrompt embeds the problem and the candidate's answer.
func UserPrompt(req models.EvaluationRequest) string {
	return fmt.Sprintf(`Problem:
%s

Candidate's answer:
%s

Evaluate the answer.`, req.ProblemDescription, req.UserAnswer)
}
