package timetracking

type CreateTimeEntryRequest struct {
	TaskNames []string `json:"taskNames" binding:"required,min=1,dive,required"`
	Hours     float64  `json:"hours"     binding:"required,gt=0"`
	Date      string   `json:"date"      binding:"required,datetime=2006-01-02"`
}

type ListTimeEntriesResponse struct {
	Entries []*TimeEntry `json:"entries"`
}
