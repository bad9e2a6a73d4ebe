package queue

import (
	"context"
	"log"
	"sync"
	"time"

	"travel-planner/internal/models"
)

const (
	// MaxRetries is the maximum number of automatic retries for failed deliveries.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
)

// NotificationCreator defines the interface for persisting notifications.
type NotificationCreator interface {
	Create(ctx context.Context, notification *models.Notification) error
}

// Processor processes notification jobs from the queue.
type Processor struct {
	queue        *MemoryQueue
	creator      NotificationCreator
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new notification job processor.
func NewProcessor(queue *MemoryQueue, creator NotificationCreator, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		creator:     creator,
		workerCount: workerCount,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Notification processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Notification processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log.Printf("Worker %d started", id)

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			// ctx.Err covers cancellation and deadline expiry alike
			if err == ErrQueueClosed || ctx.Err() != nil {
				log.Printf("Worker %d shutting down", id)
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job NotificationJob) {
	notification := &models.Notification{
		UserID:  job.UserID,
		Title:   job.Title,
		Message: job.Message,
		Type:    job.Type,
	}

	if err := p.creator.Create(ctx, notification); err != nil {
		log.Printf("Failed to deliver notification for user %s: %v", job.UserID.Hex(), err)
		p.handleFailure(job)
		return
	}
}

func (p *Processor) handleFailure(job NotificationJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		// Notifications are advisory, so a job that keeps failing is dropped.
		log.Printf("Max retries reached for user %s notification, dropping", job.UserID.Hex())
		return
	}

	// Calculate exponential backoff delay
	delay := RetryDelay * time.Duration(1<<uint(job.RetryCount-1))
	log.Printf("Retrying notification for user %s in %v (attempt %d/%d)", job.UserID.Hex(), delay, job.RetryCount+1, MaxRetries)

	// Schedule retry with delay. Uses shutdownCh instead of ctx to allow
	// in-flight retries to complete during graceful shutdown.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Printf("Shutdown during retry delay for user %s notification, dropping", job.UserID.Hex())
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				log.Printf("Failed to re-enqueue notification for user %s: %v", job.UserID.Hex(), err)
			}
		}
	}()
}
