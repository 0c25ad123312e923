package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	internalEntity "github.com/evandrarf/words7000-bot/internal/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&internalEntity.UserScore{}, &internalEntity.UserState{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testStores(t *testing.T) map[string]KeyValueStore {
	return map[string]KeyValueStore{
		"memory": NewMemoryKeyValueStore(),
		"gorm":   NewGormKeyValueStore(openTestDB(t), "test"),
	}
}

func TestKeyValueStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Get(ctx, "u1"); !errors.Is(err, ErrKeyNotFound) {
				t.Fatalf("expected ErrKeyNotFound, got %v", err)
			}
			if err := store.Set(ctx, "u1", []byte("first")); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := store.Set(ctx, "u1", []byte("second")); err != nil {
				t.Fatalf("Set overwrite: %v", err)
			}
			got, err := store.Get(ctx, "u1")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if string(got) != "second" {
				t.Errorf("expected overwritten value, got %q", got)
			}
			if err := store.Delete(ctx, "u1"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := store.Get(ctx, "u1"); !errors.Is(err, ErrKeyNotFound) {
				t.Errorf("expected key gone after delete, got %v", err)
			}
		})
	}
}

func TestKeyValueStoreGetAndDeleteOnce(t *testing.T) {
	ctx := context.Background()
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set(ctx, "u1", []byte("pending")); err != nil {
				t.Fatalf("Set: %v", err)
			}

			const callers = 8
			var (
				wg   sync.WaitGroup
				hits atomic.Int32
			)
			for i := 0; i < callers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					v, err := store.GetAndDelete(ctx, "u1")
					switch {
					case err == nil && string(v) == "pending":
						hits.Add(1)
					case errors.Is(err, ErrKeyNotFound):
					default:
						t.Errorf("GetAndDelete: %q %v", v, err)
					}
				}()
			}
			wg.Wait()

			if got := hits.Load(); got != 1 {
				t.Errorf("value taken %d times, want 1", got)
			}
			if _, err := store.Get(ctx, "u1"); !errors.Is(err, ErrKeyNotFound) {
				t.Errorf("expected key gone after take, got %v", err)
			}
		})
	}
}

func TestGormKeyValueStoreNamespaces(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	pending := NewGormKeyValueStore(db, "pending_question")
	collection := NewGormKeyValueStore(db, "collection")

	if err := pending.Set(ctx, "u1", []byte("p")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := collection.Get(ctx, "u1"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("namespaces leaked into each other: %v", err)
	}
}

func TestPendingQuestionIsConsumedOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewPendingQuestionRepository(NewMemoryKeyValueStore())

	if ok, err := repo.Exists(ctx, "u1"); err != nil || ok {
		t.Fatalf("expected no pending question, got %v %v", ok, err)
	}
	if err := repo.Put(ctx, "u1", entity.WordEntry{ID: "1", Word: "apple (n.)"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Put(ctx, "u1", entity.WordEntry{ID: "2", Word: "run (v.)"}); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	if ok, _ := repo.Exists(ctx, "u1"); !ok {
		t.Fatal("expected pending question")
	}

	w, err := repo.Take(ctx, "u1")
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if w.ID != "2" {
		t.Errorf("expected latest pending word, got %q", w.ID)
	}
	if _, err := repo.Take(ctx, "u1"); !errors.Is(err, entity.ErrNoPendingQuestion) {
		t.Errorf("expected ErrNoPendingQuestion on second take, got %v", err)
	}
}

func TestCollectionRepositoryKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewCollectionRepository(NewGormKeyValueStore(openTestDB(t), "collection"))

	words, err := repo.Load(ctx, "u1")
	if err != nil || words != nil {
		t.Fatalf("expected empty collection, got %v %v", words, err)
	}
	saved := []entity.WordEntry{{ID: "3", Word: "c"}, {ID: "1", Word: "a"}}
	if err := repo.Save(ctx, "u1", saved); err != nil {
		t.Fatalf("Save: %v", err)
	}
	words, err = repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(words) != 2 || words[0].ID != "3" || words[1].ID != "1" {
		t.Errorf("unexpected collection %+v", words)
	}
}

func TestUserScoreRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserScoreRepository(db)

	if _, err := repo.FindByUserID(nil, "u1"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	score := &internalEntity.UserScore{UserID: "u1"}
	if err := repo.Create(nil, score); err != nil {
		t.Fatalf("Create: %v", err)
	}
	score.Point = 3
	score.WrongAnswer = 1
	if err := repo.Update(nil, score); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.FindByUserID(nil, "u1")
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if got.Point != 3 || got.WrongAnswer != 1 {
		t.Errorf("unexpected score %+v", got)
	}
}
