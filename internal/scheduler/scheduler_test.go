package scheduler

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/hedgesim/pkg/config"
	"github.com/wonny/hedgesim/pkg/logger"
)

type fakeJob struct {
	name     string
	schedule string
	runs     int
	fail     bool
}

func (j *fakeJob) Name() string     { return j.name }
func (j *fakeJob) Schedule() string { return j.schedule }

func (j *fakeJob) Run(ctx context.Context) error {
	j.runs++
	if j.fail {
		return fmt.Errorf("boom")
	}
	return nil
}

func testScheduler() *Scheduler {
	log := logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "console"})
	return New(log)
}

func TestAddJob(t *testing.T) {
	s := testScheduler()

	job := &fakeJob{name: "test_job", schedule: "0 10 0 * * *"}
	require.NoError(t, s.AddJob(job))

	// 중복 등록 거부
	assert.Error(t, s.AddJob(&fakeJob{name: "test_job", schedule: "@hourly"}))

	// 잘못된 cron 표현식 거부
	assert.Error(t, s.AddJob(&fakeJob{name: "bad_schedule", schedule: "not a schedule"}))
}

func TestRunJob_RecordsHistory(t *testing.T) {
	s := testScheduler()

	job := &fakeJob{name: "ok_job", schedule: "@hourly"}
	require.NoError(t, s.AddJob(job))

	s.runJob(job)
	s.runJob(job)

	history := s.History("ok_job")
	require.Len(t, history, 2)
	assert.Equal(t, 2, job.runs)
	for _, r := range history {
		assert.True(t, r.Success)
		assert.Equal(t, "ok_job", r.JobName)
		assert.Empty(t, r.Error)
	}
}

func TestRunJob_RecordsFailure(t *testing.T) {
	s := testScheduler()

	job := &fakeJob{name: "fail_job", schedule: "@hourly", fail: true}
	require.NoError(t, s.AddJob(job))

	s.runJob(job)

	history := s.History("fail_job")
	require.Len(t, history, 1)
	assert.False(t, history[0].Success)
	assert.Equal(t, "boom", history[0].Error)
}

func TestHistory_UnknownJob(t *testing.T) {
	s := testScheduler()
	assert.Nil(t, s.History("missing"))
}

func TestJobHistory_Capped(t *testing.T) {
	h := &JobHistory{}
	for i := 0; i < 150; i++ {
		h.AddResult(JobResult{JobName: fmt.Sprintf("run-%d", i)})
	}

	require.Len(t, h.Results, 100)
	// 최근 100건만 유지
	assert.Equal(t, "run-50", h.Results[0].JobName)
	assert.Equal(t, "run-149", h.Results[99].JobName)
}
