package lead

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"bura/internal/wizard"
)

// Lead is one finished questionnaire. Rows are insert-only.
type Lead struct {
	ID        int64          `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Phone     string         `gorm:"size:13;not null;index" json:"phone"`
	FormData  datatypes.JSON `gorm:"not null" json:"formData"`
	PlanID    string         `gorm:"column:plan_id;size:6;uniqueIndex" json:"planId"`
	Flow      string         `gorm:"size:16;not null;default:coach" json:"flow"`
	CreatedAt time.Time      `gorm:"not null" json:"createdAt"`
}

func (Lead) TableName() string { return "leads" }

// Answers decodes the stored formData.
func (l *Lead) Answers() (wizard.Answers, error) {
	form := map[string]any{}
	if len(l.FormData) > 0 {
		if err := json.Unmarshal(l.FormData, &form); err != nil {
			return wizard.Answers{}, err
		}
	}
	a := wizard.FromForm(form)
	a.Name = l.Name
	a.Phone = l.Phone
	return a, nil
}
