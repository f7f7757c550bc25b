package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/edukit/coursehub/internal/core/domain"
)

// CoursesJSON writes the course listing as an indented JSON array.
func CoursesJSON(w io.Writer, courses []domain.CourseSummary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(courses)
}

// CoursesCSV writes the course listing as CSV with a header row.
func CoursesCSV(w io.Writer, courses []domain.CourseSummary) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	headers := []string{
		"ID", "Name", "Description", "DurationHours",
		"CreatorEmail", "CreatorName",
		"CreatedAt", "UpdatedAt",
	}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, c := range courses {
		row := []string{
			c.ID,
			c.Name,
			c.Description,
			fmt.Sprintf("%d", c.Duration),
			c.Creator.Email,
			c.Creator.Fname + " " + c.Creator.Lname,
			c.CreatedAt.Format(time.RFC3339),
			c.UpdatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return writer.Error()
}
