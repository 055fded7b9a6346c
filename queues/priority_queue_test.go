package queues_test

import (
	"cmp"
	"lazyseq/queues"
	"slices"
	"testing"
)

// Simple Task struct for testing
type Task struct {
	Name     string
	Priority int
}

func byPriority(a, b Task) int {
	return cmp.Compare(a.Priority, b.Priority)
}

func TestNewPriorityQueue_Validation(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewPriorityQueue should panic with nil comparator")
		}
	}()
	queues.NewPriorityQueue[int](10, nil)
}

func TestPriorityQueue_Ordering(t *testing.T) {
	tests := []struct {
		name     string
		compare  func(a, b Task) int
		inputs   []Task
		expected []string // Expected Names in order
	}{
		{
			name:    "MinHeap",
			compare: byPriority,
			inputs: []Task{
				{"A", 3}, {"B", 1}, {"C", 4}, {"D", 2},
			},
			expected: []string{"B", "D", "A", "C"}, // 1, 2, 3, 4
		},
		{
			name:    "MaxHeap",
			compare: func(a, b Task) int { return byPriority(b, a) },
			inputs: []Task{
				{"A", 3}, {"B", 1}, {"C", 4}, {"D", 2},
			},
			expected: []string{"C", "A", "D", "B"}, // 4, 3, 2, 1
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pq := queues.NewPriorityQueue(10, tt.compare)

			for _, task := range tt.inputs {
				pq.Enqueue(task)
			}

			if pq.Size() != len(tt.inputs) {
				t.Errorf("expected size %d, got %d", len(tt.inputs), pq.Size())
			}

			for _, expName := range tt.expected {
				val, ok := pq.Dequeue()
				if !ok {
					t.Errorf("expected dequeue %s, got nothing", expName)
				}
				if val.Name != expName {
					t.Errorf("expected name %s, got %s (prio %d)", expName, val.Name, val.Priority)
				}
			}

			if !pq.IsEmpty() {
				t.Error("queue should be empty")
			}
		})
	}
}

func TestPriorityQueue_ReplaceHead(t *testing.T) {
	pq := queues.NewPriorityQueue(4, cmp.Compare[int])

	if _, ok := pq.ReplaceHead(1); ok {
		t.Error("ReplaceHead on empty should be false")
	}
	if !pq.IsEmpty() {
		t.Error("ReplaceHead on empty must not insert")
	}

	pq.Enqueue(1)
	pq.Enqueue(5)
	pq.Enqueue(3)

	old, ok := pq.ReplaceHead(4)
	if !ok || old != 1 {
		t.Errorf("expected old head 1, got %v (ok=%v)", old, ok)
	}

	var got []int
	for v, ok := pq.Dequeue(); ok; v, ok = pq.Dequeue() {
		got = append(got, v)
	}
	if !slices.Equal(got, []int{3, 4, 5}) {
		t.Errorf("expected [3 4 5], got %v", got)
	}
}

func TestPriorityQueue_PeekAndEmpty(t *testing.T) {
	pq := queues.NewPriorityQueue(10, cmp.Compare[int])

	if _, ok := pq.Peek(); ok {
		t.Error("Peek on empty should be false")
	}

	pq.Enqueue(100)
	if val, ok := pq.Peek(); !ok || val != 100 {
		t.Errorf("Peek expected 100, got %v", val)
	}

	// Peek shouldn't remove
	if pq.Size() != 1 {
		t.Error("Peek removed item")
	}
}

func TestSmallestN(t *testing.T) {
	input := []Task{{"A", 3}, {"B", 1}, {"C", 3}, {"D", 2}, {"E", 1}, {"F", 3}}

	tests := []struct {
		name     string
		n        int
		expected []string
	}{
		{"zero", 0, nil},
		{"one", 1, []string{"B"}},
		{"ties at cut", 4, []string{"B", "E", "D", "A"}},
		{"more than input", 10, []string{"B", "E", "D", "A", "C", "F"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := queues.SmallestN(slices.Values(input), tt.n, byPriority)
			var names []string
			for _, task := range got {
				names = append(names, task.Name)
			}
			if !slices.Equal(names, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, names)
			}

			stable := slices.Clone(input)
			slices.SortStableFunc(stable, byPriority)
			if want := stable[:min(tt.n, len(stable))]; !slices.Equal(got, want) && len(want) > 0 {
				t.Errorf("SmallestN disagrees with stable sort: %v vs %v", got, want)
			}
		})
	}
}
