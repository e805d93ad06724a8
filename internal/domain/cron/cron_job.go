package cron

import (
	"context"
	"sync"
	"time"

	"github.com/questx-lab/clubbot/pkg/xcontext"
)

type CronJob interface {
	Do(context.Context)
	RunNow() bool
	Next() time.Time
}

type CronJobManager struct {
	mutex sync.Mutex
	jobs  map[CronJob]*time.Timer

	stopOnce sync.Once
	stopped  chan struct{}
}

func NewCronJobManager() *CronJobManager {
	return &CronJobManager{
		jobs:    make(map[CronJob]*time.Timer),
		stopped: make(chan struct{}),
	}
}

func (m *CronJobManager) Register(job CronJob) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.jobs[job] = nil
}

// Start runs the registered jobs on their schedule and blocks until ctx is
// done or Cancel is called.
func (m *CronJobManager) Start(ctx context.Context) {
	xcontext.Logger(ctx).Infof("Cron job manager started")

	m.mutex.Lock()
	jobs := make([]CronJob, 0, len(m.jobs))
	for job := range m.jobs {
		jobs = append(jobs, job)
	}
	m.mutex.Unlock()

	for _, job := range jobs {
		if job.RunNow() {
			go m.run(ctx, job)
		} else {
			m.schedule(ctx, job)
		}
	}

	select {
	case <-ctx.Done():
		m.Cancel(ctx)
	case <-m.stopped:
	}

	xcontext.Logger(ctx).Infof("Cron job manager stopped")
}

func (m *CronJobManager) Cancel(ctx context.Context) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for job, timer := range m.jobs {
		if timer == nil {
			xcontext.Logger(ctx).Warnf("Stop a job that hasn't been scheduled: %T", job)
			continue
		}

		timer.Stop()
	}

	// Clear all jobs to not schedule them again.
	m.jobs = make(map[CronJob]*time.Timer)
	m.stopOnce.Do(func() { close(m.stopped) })
}

func (m *CronJobManager) run(ctx context.Context, job CronJob) {
	if !m.registered(job) {
		return
	}

	xcontext.Logger(ctx).Infof("%T is running...", job)
	job.Do(ctx)
	xcontext.Logger(ctx).Infof("%T ok", job)

	m.schedule(ctx, job)
}

func (m *CronJobManager) registered(job CronJob) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	_, ok := m.jobs[job]
	return ok
}

func (m *CronJobManager) schedule(ctx context.Context, job CronJob) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Only schedule jobs which are still in the job list.
	if _, ok := m.jobs[job]; ok {
		m.jobs[job] = time.AfterFunc(time.Until(job.Next()), func() { m.run(ctx, job) })
	}
}
