package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/eventura/eventura-backend/internal/config"
	"github.com/eventura/eventura-backend/internal/database"
	"github.com/eventura/eventura-backend/internal/logger"
	"github.com/eventura/eventura-backend/internal/model"
	"github.com/eventura/eventura-backend/internal/repository"
)

// Seeder for the fixture dataset. Replaces all three collections with
// generated records and reassigns student ratings so they form a permutation
// of 1..N consistent with descending score order.

var firstNames = []string{
	"Ivan", "Alexey", "Maria", "Dmitry", "Elena", "Nikolay",
	"Anna", "Sergey", "Olga", "Mikhail", "Tatiana", "Vladimir",
	"Ekaterina", "Andrey", "Veronika", "Konstantin", "Yana", "Pavel",
}

var surnames = []string{
	"Petrov", "Sidorov", "Ivanov", "Kozlov", "Smirnov", "Volkov",
	"Kuznetsov", "Morozov", "Popov", "Lebedev", "Novikov", "Orlov",
	"Sokolov", "Yuriev", "Zakharov", "Pavlov", "Alexandrov", "Svyatoslavov",
}

func main() {
	var (
		collegeCount = flag.Int("colleges", 42, "number of colleges to generate")
		eventCount   = flag.Int("events", 256, "number of events to generate")
		studentCount = flag.Int("students", 1627, "number of students to generate")
	)
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	now := time.Now()

	// ─── Colleges ──────────────────────────────────────────────────────
	colleges := make([]model.College, 0, *collegeCount)
	for i := 1; i <= *collegeCount; i++ {
		colleges = append(colleges, model.College{
			ID:   i,
			Name: fmt.Sprintf("College #%d", i),
			City: "RF",
		})
	}

	// ─── Events ────────────────────────────────────────────────────────
	events := make([]model.Event, 0, *eventCount)
	for i := 1; i <= *eventCount; i++ {
		events = append(events, model.Event{
			ID:           i,
			Name:         fmt.Sprintf("Event %d", i),
			Date:         now.AddDate(0, 0, -rand.Intn(366)),
			CollegeID:    1 + rand.Intn(*collegeCount),
			Participants: 10 + rand.Intn(491),
		})
	}

	// ─── Students ──────────────────────────────────────────────────────
	students := make([]model.Student, 0, *studentCount)
	for i := 1; i <= *studentCount; i++ {
		students = append(students, model.Student{
			ID:           i,
			Name:         firstNames[rand.Intn(len(firstNames))] + " " + surnames[rand.Intn(len(surnames))],
			CollegeID:    1 + rand.Intn(*collegeCount),
			Score:        50 + rand.Intn(1451),
			EventsCount:  1 + rand.Intn(15),
			LastActivity: now.AddDate(0, 0, -rand.Intn(91)),
			JoinedDate:   now.AddDate(0, 0, -(30 + rand.Intn(336))),
		})
	}
	AssignRatings(students)

	// Snapshot the per-college student counts onto the colleges.
	perCollege := make(map[int]int)
	for _, s := range students {
		perCollege[s.CollegeID]++
	}
	for i := range colleges {
		colleges[i].StudentsCount = perCollege[colleges[i].ID]
	}

	// ─── Persist ───────────────────────────────────────────────────────
	collegeRepo := repository.NewCollegeRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)

	if err := collegeRepo.ReplaceAll(ctx, colleges); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed colleges")
	}
	if err := eventRepo.ReplaceAll(ctx, events); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed events")
	}
	if err := studentRepo.ReplaceAll(ctx, students); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed students")
	}

	// ─── Invalidate aggregate caches ───────────────────────────────────
	// The cached aggregates describe the previous dataset; drop them so the
	// next request (or the background worker) recomputes from fresh records.
	if rdb, err := database.NewRedisClient(ctx, cfg, log); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, aggregate caches not invalidated")
	} else if rdb != nil {
		defer rdb.Close()
		if err := rdb.Del(ctx, config.CacheKey.AggregateKeys()...).Err(); err != nil {
			log.Warn().Err(err).Msg("Failed to invalidate aggregate caches")
		}
	}

	log.Info().
		Int("colleges", len(colleges)).
		Int("events", len(events)).
		Int("students", len(students)).
		Msg("Database seeded")
}

// AssignRatings sorts students by score descending (stable, so ties keep
// insertion order) and writes rating = position + 1. Ratings end up a strict
// permutation of 1..N.
func AssignRatings(students []model.Student) {
	sort.SliceStable(students, func(i, j int) bool {
		return students[i].Score > students[j].Score
	})
	for i := range students {
		students[i].Rating = i + 1
	}
}
