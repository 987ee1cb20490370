package invoice_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehfoto/backoffice/internal/invoice"
)

func assigned(id uuid.UUID, name string, status invoice.JobStatus) invoice.Slot {
	return invoice.Slot{AssigneeID: &id, AssigneeName: name, Status: status}
}

func TestFilterJobs(t *testing.T) {
	a := uuid.New()

	done := &invoice.Invoice{Number: "1", Photo: assigned(a, "Aiman", invoice.JobDone), Edit: assigned(a, "Aiman", invoice.JobDone)}
	half := &invoice.Invoice{Number: "2", Photo: assigned(a, "Aiman", invoice.JobDone), Edit: assigned(a, "Aiman", invoice.JobInProgress)}
	none := &invoice.Invoice{Number: "3"}

	all := []*invoice.Invoice{done, half, none}

	assert.Equal(t, all, invoice.FilterJobs(all, invoice.JobFilterAll))
	assert.Equal(t, []*invoice.Invoice{half, none}, invoice.FilterJobs(all, invoice.JobFilterPending))
	assert.Equal(t, []*invoice.Invoice{done}, invoice.FilterJobs(all, invoice.JobFilterComplete))
}

func TestInvoice_Payable(t *testing.T) {
	shooter := uuid.New()
	other := uuid.New()

	inv := &invoice.Invoice{Photo: assigned(shooter, "Aiman", invoice.JobDone)}

	assert.True(t, inv.Payable(invoice.RolePhotographer, shooter))
	assert.False(t, inv.Payable(invoice.RolePhotographer, other))
	assert.False(t, inv.Payable(invoice.RoleEditor, shooter))
	assert.False(t, inv.Payable("lighting", shooter))

	inv.Photo.Paid = true
	assert.False(t, inv.Payable(invoice.RolePhotographer, shooter))

	inv.Photo = assigned(shooter, "Aiman", invoice.JobInProgress)
	assert.False(t, inv.Payable(invoice.RolePhotographer, shooter))
}

func TestJobsFor(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	invoices := []*invoice.Invoice{
		{Number: "1", Photo: assigned(a, "Aiman", invoice.JobDone), Edit: assigned(b, "Balqis", invoice.JobInProgress)},
		{Number: "2", Photo: assigned(a, "Aiman", invoice.JobInProgress), Edit: assigned(a, "Aiman", invoice.JobInProgress)},
	}

	jobs := invoice.JobsFor(invoices, a)
	require.Len(t, jobs, 3)
	assert.Equal(t, invoice.RolePhotographer, jobs[0].Role)
	assert.Equal(t, "2", jobs[2].Invoice.Number)
	assert.Equal(t, invoice.RoleEditor, jobs[2].Role)
}

func TestStats(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	invoices := []*invoice.Invoice{
		{Photo: assigned(a, "Aiman", invoice.JobDone), Edit: assigned(b, "Balqis", invoice.JobInProgress)},
		{Photo: assigned(a, "Aiman", invoice.JobInProgress)},
		{},
	}

	stats := invoice.Stats(invoices)
	require.Len(t, stats, 2)

	assert.Equal(t, invoice.StaffStat{StaffID: a, StaffName: "Aiman", Total: 2, Completed: 1, Pending: 1}, stats[0])
	assert.Equal(t, invoice.StaffStat{StaffID: b, StaffName: "Balqis", Total: 1, Completed: 0, Pending: 1}, stats[1])
}
