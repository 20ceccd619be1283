package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"
)

func TestEnqueueClaimOrder(t *testing.T) {
	q := New(3)

	first := q.EnqueueEvaluation(model.EvaluationBatch{ID: "b1", Type: model.TrainingGrund})
	second := q.EnqueueMessage(model.OutboundMessage{ChannelID: "c1"})
	third := q.EnqueueMessage(model.OutboundMessage{ChannelID: "c2"})

	assert.Equal(t, 3, q.Pending())

	tasks := q.Claim()
	require.Len(t, tasks, 3)
	assert.Equal(t, []string{first, second, third}, []string{tasks[0].ID, tasks[1].ID, tasks[2].ID})
	assert.Equal(t, model.TaskEvaluation, tasks[0].Kind)
	assert.Equal(t, model.TaskMessage, tasks[1].Kind)

	// Claim empties the queue; a second claim finds nothing.
	assert.Equal(t, 0, q.Pending())
	assert.Empty(t, q.Claim())
}

func TestRequeueUntilDeadLetter(t *testing.T) {
	q := New(3)
	q.EnqueueMessage(model.OutboundMessage{ChannelID: "c1"})

	tasks := q.Claim()
	require.Len(t, tasks, 1)

	// First and second failures come back for another tick.
	q.Requeue(tasks[0])
	tasks = q.Claim()
	require.Len(t, tasks, 1)
	assert.Equal(t, 1, tasks[0].Attempts)

	q.Requeue(tasks[0])
	tasks = q.Claim()
	require.Len(t, tasks, 1)
	assert.Equal(t, 2, tasks[0].Attempts)

	// Third failure exhausts the attempts.
	q.Requeue(tasks[0])
	assert.Equal(t, 0, q.Pending())

	dead := q.DeadLetters()
	require.Len(t, dead, 1)
	assert.Equal(t, 3, dead[0].Attempts)
}

func TestRetryPolicyIsUniformAcrossKinds(t *testing.T) {
	q := New(2)
	q.EnqueueEvaluation(model.EvaluationBatch{ID: "b1", Type: model.TrainingTheorie})
	q.EnqueueMessage(model.OutboundMessage{ChannelID: "c1"})

	for i := 0; i < 2; i++ {
		for _, task := range q.Claim() {
			q.Requeue(task)
		}
	}

	assert.Equal(t, 0, q.Pending())
	assert.Len(t, q.DeadLetters(), 2)
}

func TestConcurrentProducers(t *testing.T) {
	q := New(3)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.EnqueueMessage(model.OutboundMessage{ChannelID: "c"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, q.Pending())
	assert.Len(t, q.Claim(), 50)
}

func TestTaskIDsAreUnique(t *testing.T) {
	q := New(3)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := q.EnqueueMessage(model.OutboundMessage{ChannelID: "c"})
		assert.False(t, seen[id])
		seen[id] = true
	}
}
