package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"freshfold/config"
	customerRepo "freshfold/database/repository/customer"
	orderRepo "freshfold/database/repository/order"
	"freshfold/models"

	"github.com/hibiken/asynq"
)

const (
	TypeMirrorCustomer = "mirror:customer"
	TypeMirrorOrder    = "mirror:order"
)

// MirrorEnqueuer queues mirror writes so submission latency never waits on
// the mirror database.
type MirrorEnqueuer struct {
	client *asynq.Client
}

// NewMirrorEnqueuer builds an enqueuer against the mirror queue Redis DB.
func NewMirrorEnqueuer() *MirrorEnqueuer {
	return &MirrorEnqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisMirrorDB,
		}),
	}
}

// EnqueueCustomer schedules a customer mirror write.
func (e *MirrorEnqueuer) EnqueueCustomer(customer models.Customer) error {
	payload, err := json.Marshal(customer)
	if err != nil {
		return err
	}
	_, err = e.client.Enqueue(asynq.NewTask(TypeMirrorCustomer, payload), asynq.MaxRetry(5))
	return err
}

// EnqueueOrder schedules an order mirror write.
func (e *MirrorEnqueuer) EnqueueOrder(order models.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return err
	}
	_, err = e.client.Enqueue(asynq.NewTask(TypeMirrorOrder, payload), asynq.MaxRetry(5))
	return err
}

// InitMirrorWorker runs the async mirror worker in the background.
func InitMirrorWorker(customers customerRepo.CustomerRepository, orders orderRepo.OrderRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMirrorDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMirrorCustomer, handleMirrorCustomer(customers))
	mux.HandleFunc(TypeMirrorOrder, handleMirrorOrder(orders))

	go func() {
		log.Println("[MirrorWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MirrorWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MirrorWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleMirrorCustomer(customers customerRepo.CustomerRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var customer models.Customer
		if err := json.Unmarshal(task.Payload(), &customer); err != nil {
			log.Printf("[MirrorWorker] invalid customer payload: %v", err)
			return err
		}

		existing, err := customers.GetByEmail(customer.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			customer.ID = existing.ID
			customer.CreatedAt = existing.CreatedAt
			return customers.Update(&customer)
		}
		return customers.Create(&customer)
	}
}

func handleMirrorOrder(orders orderRepo.OrderRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var order models.Order
		if err := json.Unmarshal(task.Payload(), &order); err != nil {
			log.Printf("[MirrorWorker] invalid order payload: %v", err)
			return err
		}
		return orders.Create(&order)
	}
}
