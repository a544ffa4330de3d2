package provider

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockClient.
type MockResponse struct {
	Content json.RawMessage
	Err     error
}

// MockClient is a deterministic Client for local development and tests.
// Queued responses are returned in FIFO order; when the queue is empty it
// falls back to built-in JSON shaped for the known schemas. All requests
// are recorded in Calls.
type MockClient struct {
	mu        sync.Mutex
	responses []MockResponse

	Calls []Request
}

func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{responses: responses}
}

func (m *MockClient) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) > 0 {
		resp := m.responses[0]
		m.responses = m.responses[1:]
		if resp.Err != nil {
			return nil, resp.Err
		}
		return &Response{Content: resp.Content, Model: "mock"}, nil
	}

	return &Response{Content: cannedFor(req.Schema), Model: "mock"}, nil
}

func (m *MockClient) ModelID() string {
	return "mock"
}

// CallCount reports how many requests the mock has served.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func cannedFor(schema *Schema) json.RawMessage {
	if schema == nil {
		return json.RawMessage(`{}`)
	}
	switch schema.Name {
	case "sprint-plan":
		return json.RawMessage(mockSprintJSON)
	case "answer-evaluation":
		return json.RawMessage(mockEvaluationJSON)
	case "study-roadmap":
		return json.RawMessage(mockRoadmapJSON)
	default:
		return json.RawMessage(`{}`)
	}
}

const mockSprintJSON = `{
  "title": "[Mock] Graphs Sprint",
  "total_minutes": 60,
  "blocks": [
    {"name": "Concept review", "minutes": 15, "objective": "[Mock] Revisit BFS and DFS traversal orders."},
    {"name": "Guided problem", "minutes": 25, "objective": "[Mock] Solve one medium traversal problem end to end."},
    {"name": "Timed drill", "minutes": 20, "objective": "[Mock] Attempt one problem under interview conditions."}
  ],
  "practice": [
    {"platform": "LeetCode", "problem_title": "Number of Islands", "difficulty": "medium", "why_this": "[Mock] Canonical grid BFS/DFS."},
    {"platform": "LeetCode", "problem_title": "Course Schedule", "difficulty": "medium", "why_this": "[Mock] Cycle detection via topological sort."}
  ],
  "quick_revision": ["[Mock] BFS uses a queue, DFS a stack.", "[Mock] Mark nodes visited on enqueue, not dequeue."],
  "common_mistakes": ["[Mock] Forgetting the visited set.", "[Mock] Re-processing nodes already in the queue."]
}`

const mockEvaluationJSON = `{
  "score": 7,
  "correctness": "partially_correct",
  "main_mistakes": ["[Mock] Missed the empty-input edge case."],
  "ideal_approach": "[Mock] Use a hash map for O(n) lookups instead of nested loops.",
  "next_practice": ["[Mock] Two Sum variants", "[Mock] Subarray sum problems"]
}`

const mockRoadmapJSON = `{
  "plan_meta": {"duration_days": 28, "target_role": "SDE", "level": "Intermediate"},
  "weeks": [
    {
      "week_goal": "[Mock] Arrays and hashing fluency",
      "topics": ["Arrays", "Hash Maps"],
      "daily_schedule": ["[Mock] Day 1: two pointers", "[Mock] Day 2: sliding window", "[Mock] Day 3: prefix sums", "[Mock] Day 4: hashing drills", "[Mock] Day 5: mixed review", "[Mock] Day 6: timed set"]
    },
    {
      "week_goal": "[Mock] Trees and graphs",
      "topics": ["Trees", "Graphs"],
      "daily_schedule": ["[Mock] Day 1: traversals", "[Mock] Day 2: BFS", "[Mock] Day 3: DFS", "[Mock] Day 4: topological sort", "[Mock] Day 5: mixed review", "[Mock] Day 6: timed set"]
    }
  ],
  "daily_practice_templates": ["[Mock] 1 concept block + 2 problems + 1 review note"],
  "resources": ["[Mock] NeetCode roadmap", "[Mock] CLRS chapter summaries"],
  "success_metrics": ["[Mock] 80% of mediums solved unaided", "[Mock] Daily streak maintained"]
}`
