package services

import (
	"bytes"
	"testing"
	"time"

	"wrist_surgery_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestListLeads(t *testing.T) {
	db := setupLeadTestDB(t)
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	for i, name := range []string{"First", "Second", "Third"} {
		lead := &models.Lead{
			PatientName:  name,
			MobileNumber: "9876543210",
			Channel:      "emailjs",
			Status:       models.LeadStatusDelivered,
			CreatedAt:    base.Add(time.Duration(i) * 24 * time.Hour),
		}
		require.NoError(t, RecordLead(db, lead))
		assert.NotEmpty(t, lead.ID)
	}

	t.Run("Open bounds, newest first", func(t *testing.T) {
		leads, err := ListLeads(db, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.Len(t, leads, 3)
		assert.Equal(t, "Third", leads[0].PatientName)
		assert.Equal(t, "First", leads[2].PatientName)
	})

	t.Run("Range", func(t *testing.T) {
		leads, err := ListLeads(db, base.Add(time.Hour), base.Add(48*time.Hour))
		require.NoError(t, err)
		require.Len(t, leads, 1)
		assert.Equal(t, "Second", leads[0].PatientName)
	})

	t.Run("Archive key update", func(t *testing.T) {
		leads, _ := ListLeads(db, time.Time{}, time.Time{})
		require.NoError(t, SetLeadArchiveKey(db, leads[0].ID, "leads/x.json"))

		var got models.Lead
		require.NoError(t, db.First(&got, "id = ?", leads[0].ID).Error)
		assert.Equal(t, "leads/x.json", got.ArchiveKey)
	})
}

func TestRecordLeadWithoutDB(t *testing.T) {
	assert.Error(t, RecordLead(nil, &models.Lead{}))
}

func TestExportLeadsXLSX(t *testing.T) {
	db := setupLeadTestDB(t)
	require.NoError(t, RecordLead(db, &models.Lead{
		PatientName:  "Asha Rao",
		MobileNumber: "9876543210",
		Location:     "Malleshwaram, Bengaluru",
		PageName:     "Wrist Surgery",
		DomainName:   "wristsurgery.in",
		Channel:      "emailjs",
		Status:       models.LeadStatusFailed,
		Error:        "status 400",
		IPAddress:    "1.2.3.4",
	}))

	buf, err := ExportLeadsXLSX(db, time.Time{}, time.Time{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(leadsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, leadExportHeaders, rows[0])
	assert.Equal(t, "Asha Rao", rows[1][1])
	assert.Equal(t, "9876543210", rows[1][2])
	assert.Equal(t, "Malleshwaram, Bengaluru", rows[1][3])
	assert.Equal(t, models.LeadStatusFailed, rows[1][7])
	assert.Equal(t, "1.2.3.4", rows[1][9])
}
