package timetracking

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeEntry struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	ProjectID uuid.UUID `json:"projectId" gorm:"column:project_id"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id"`
	UserName  string    `json:"userName"  gorm:"column:user_name"`
	Hours     float64   `json:"hours"     gorm:"column:hours"`
	Date      string    `json:"date"      gorm:"column:date"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`

	TaskNamesRaw string   `json:"-"         gorm:"column:task_names_raw"`
	TaskNames    []string `json:"taskNames" gorm:"-"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

func (e *TimeEntry) BeforeSave(tx *gorm.DB) error {
	e.TaskNamesRaw = strings.Join(e.TaskNames, "\n")
	return nil
}

func (e *TimeEntry) AfterFind(tx *gorm.DB) error {
	if e.TaskNamesRaw == "" {
		e.TaskNames = []string{}
		return nil
	}

	e.TaskNames = strings.Split(e.TaskNamesRaw, "\n")

	return nil
}
