package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                 int       `db:"id" json:"id"`
	Email              string    `db:"email" json:"email"`
	PasswordHash       string    `db:"password_hash" json:"-"`
	Name               string    `db:"name" json:"name"`
	Country            string    `db:"country" json:"country"`
	Currency           string    `db:"currency" json:"currency"`
	Timezone           string    `db:"timezone" json:"timezone"`
	Plan               string    `db:"plan" json:"plan"`
	ResetGoal          string    `db:"reset_goal" json:"resetGoal"`
	OnboardingComplete bool      `db:"onboarding_complete" json:"onboardingComplete"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}

type IncomeSource struct {
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type BudgetCategory struct {
	Name          string          `json:"name"`
	PlannedAmount decimal.Decimal `json:"plannedAmount"`
	Color         string          `json:"color,omitempty"`
	Icon          string          `json:"icon,omitempty"`
}

type BudgetMonth struct {
	ID         int              `db:"id" json:"id"`
	UserID     int              `db:"user_id" json:"userId"`
	Month      int              `db:"month" json:"month"`
	Year       int              `db:"year" json:"year"`
	Incomes    IncomeSources    `db:"incomes" json:"incomes"`
	Categories BudgetCategories `db:"categories" json:"categories"`
	CreatedAt  time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time        `db:"updated_at" json:"updatedAt"`
}

type Transaction struct {
	ID           int             `db:"id" json:"id"`
	UserID       int             `db:"user_id" json:"userId"`
	Type         string          `db:"type" json:"type"` // income | expense
	Amount       decimal.Decimal `db:"amount" json:"amount"`
	Currency     string          `db:"currency" json:"currency"`
	CategoryName *string         `db:"category_name" json:"categoryName,omitempty"`
	Date         time.Time       `db:"date" json:"date"`
	Note         *string         `db:"note" json:"note,omitempty"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}

type GivingEntry struct {
	ID         int             `db:"id" json:"id"`
	UserID     int             `db:"user_id" json:"userId"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	Currency   string          `db:"currency" json:"currency"`
	Date       time.Time       `db:"date" json:"date"`
	GivingType string          `db:"giving_type" json:"givingType"` // tithe | offering | seed | charity
	Note       *string         `db:"note" json:"note,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
}

type WeeklyCheckin struct {
	Week int    `json:"week"`
	Text string `json:"text"`
}

type PrayerGoal struct {
	ID              int            `db:"id" json:"id"`
	UserID          int            `db:"user_id" json:"userId"`
	Month           int            `db:"month" json:"month"`
	Year            int            `db:"year" json:"year"`
	Title           string         `db:"title" json:"title"`
	Notes           *string        `db:"notes" json:"notes,omitempty"`
	Completed       bool           `db:"completed" json:"completed"`
	LinkedToFinance bool           `db:"linked_to_finance" json:"linkedToFinance"`
	WeeklyCheckins  WeeklyCheckins `db:"weekly_checkins" json:"weeklyCheckins"`
	CreatedAt       time.Time      `db:"created_at" json:"createdAt"`
}

type PrayerEntry struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"userId"`
	Date      time.Time `db:"date" json:"date"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type WeeklyReflection struct {
	Week        int       `json:"week"`
	Wins        string    `json:"wins"`
	Challenges  string    `json:"challenges"`
	NextSteps   string    `json:"nextSteps"`
	CompletedAt time.Time `json:"completedAt"`
}

type ResetPlan struct {
	ID                int               `db:"id" json:"id"`
	UserID            int               `db:"user_id" json:"userId"`
	StartDate         time.Time         `db:"start_date" json:"startDate"`
	CompletedTaskIDs  StringList        `db:"completed_task_ids" json:"completedTaskIds"`
	Streak            int               `db:"streak" json:"streak"`
	LastCompletedDate *time.Time        `db:"last_completed_date" json:"lastCompletedDate,omitempty"`
	WeeklyReflections WeeklyReflections `db:"weekly_reflections" json:"weeklyReflections"`
	CreatedAt         time.Time         `db:"created_at" json:"createdAt"`
}
