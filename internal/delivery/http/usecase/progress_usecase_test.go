package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/repository"
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

func newTestProgress(t *testing.T) ProgressUsecase {
	db := openTestDB(t)
	return NewProgressUsecase(ProgressConfig{DB: db, Repository: repository.NewUserScoreRepository(db)})
}

func TestGetOrInit(t *testing.T) {
	ctx := context.Background()
	u := newTestProgress(t)

	p, created, err := u.GetOrInit(ctx, "u1")
	if err != nil {
		t.Fatalf("GetOrInit: %v", err)
	}
	if !created || p.Point != 0 || p.WrongAnswer != 0 {
		t.Fatalf("first GetOrInit = %+v, created=%v", p, created)
	}

	_, created, err = u.GetOrInit(ctx, "u1")
	if err != nil {
		t.Fatalf("GetOrInit: %v", err)
	}
	if created {
		t.Fatal("second GetOrInit created a new record")
	}
}

func TestIncrementCreatesAndUpdates(t *testing.T) {
	ctx := context.Background()
	u := newTestProgress(t)

	if _, err := u.IncrementWrong(ctx, "u1"); err != nil {
		t.Fatalf("IncrementWrong: %v", err)
	}
	if _, err := u.IncrementPoint(ctx, "u1"); err != nil {
		t.Fatalf("IncrementPoint: %v", err)
	}
	p, err := u.IncrementPoint(ctx, "u1")
	if err != nil {
		t.Fatalf("IncrementPoint: %v", err)
	}
	if p.Point != 2 || p.WrongAnswer != 1 || p.Score() != 1 {
		t.Fatalf("progress = %+v, want point 2 wrong 1", p)
	}
}

func TestConcurrentIncrementsAreNotLost(t *testing.T) {
	ctx := context.Background()
	u := newTestProgress(t)

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := u.IncrementPoint(ctx, "u1"); err != nil {
				t.Errorf("IncrementPoint: %v", err)
			}
		}()
	}
	wg.Wait()

	p, _, err := u.GetOrInit(ctx, "u1")
	if err != nil {
		t.Fatalf("GetOrInit: %v", err)
	}
	if p.Point != n {
		t.Fatalf("point = %d, want %d", p.Point, n)
	}
}
