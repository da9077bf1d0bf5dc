package db

import (
	"context"

	"github.com/markdave123-py/healthsense/internal/models"
)

// DatabaseClient groups the stores that share one pool.
type DatabaseClient struct {
	pool Pool
	tx   *TxManager

	Users       *UserStore
	Symptoms    *RecordStore[models.Symptom, models.SymptomInput]
	Medications *RecordStore[models.Medication, models.MedicationInput]
	Diets       *RecordStore[models.Diet, models.DietInput]
	Lifestyles  *RecordStore[models.Lifestyle, models.LifestyleInput]
	Chat        *ChatStore
}

func NewDatabaseClient(pool Pool) *DatabaseClient {
	return &DatabaseClient{
		pool:        pool,
		tx:          NewTxManager(pool),
		Users:       NewUserStore(pool),
		Symptoms:    NewSymptomStore(pool),
		Medications: NewMedicationStore(pool),
		Diets:       NewDietStore(pool),
		Lifestyles:  NewLifestyleStore(pool),
		Chat:        NewChatStore(pool),
	}
}

func (c *DatabaseClient) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

func (c *DatabaseClient) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}
