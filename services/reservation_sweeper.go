package services

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/restoflow/restaurant-manager/utils"
)

// ReservationSweeper membebaskan meja reserved yang waktunya sudah lewat,
// sekali per menit, sebagai system actor.
type ReservationSweeper struct {
	scheduler gocron.Scheduler
	tables    *TableService
}

func NewReservationSweeper(tables *TableService) (*ReservationSweeper, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	sweeper := &ReservationSweeper{scheduler: s, tables: tables}
	_, err = s.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(sweeper.run),
	)
	if err != nil {
		return nil, err
	}
	return sweeper, nil
}

func (rs *ReservationSweeper) Start() {
	rs.scheduler.Start()
	utils.InfoLogger.Println("Reservation sweeper started (1m interval)")
}

func (rs *ReservationSweeper) Stop() {
	if err := rs.scheduler.Shutdown(); err != nil {
		utils.ErrorLogger.Printf("Failed to stop reservation sweeper: %v", err)
	}
}

func (rs *ReservationSweeper) run() {
	freed, err := rs.tables.ReleaseExpiredReservations(time.Now())
	if err != nil {
		utils.ErrorLogger.Printf("Reservation sweep failed: %v", err)
		return
	}
	if freed > 0 {
		utils.InfoLogger.Printf("Reservation sweep freed %d table(s)", freed)
	}
}
