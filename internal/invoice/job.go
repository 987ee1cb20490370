package invoice

import (
	"github.com/google/uuid"
)

// Role is one of the two job slots on an invoice.
type Role string

const (
	RolePhotographer Role = "photographer"
	RoleEditor       Role = "editor"
)

func (r Role) Valid() bool {
	return r == RolePhotographer || r == RoleEditor
}

// Label is the human-facing name used on payslips.
func (r Role) Label() string {
	if r == RoleEditor {
		return "Editing"
	}

	return "Fotografi"
}

type JobStatus string

const (
	JobPending    JobStatus = "Pending"
	JobInProgress JobStatus = "Dalam Proses"
	JobDone       JobStatus = "Selesai"
)

// Slot is the assignment state of one role. Status is empty while unassigned.
type Slot struct {
	AssigneeID   *uuid.UUID
	AssigneeName string
	Status       JobStatus
	Paid         bool
}

func (s Slot) AssignedTo(staffID uuid.UUID) bool {
	return s.AssigneeID != nil && *s.AssigneeID == staffID
}

// Slot returns the slot for role, or nil for an unknown role.
func (i *Invoice) Slot(role Role) *Slot {
	switch role {
	case RolePhotographer:
		return &i.Photo
	case RoleEditor:
		return &i.Edit
	}

	return nil
}

// JobsComplete reports whether both roles are done. An invoice without
// assignments is not complete.
func (i *Invoice) JobsComplete() bool {
	return i.Photo.Status == JobDone && i.Edit.Status == JobDone
}

// Payable reports whether staffID can be paid for role on this invoice:
// they hold the slot, it is done, and it has not been paid yet.
func (i *Invoice) Payable(role Role, staffID uuid.UUID) bool {
	s := i.Slot(role)
	if s == nil {
		return false
	}

	return s.AssignedTo(staffID) && s.Status == JobDone && !s.Paid
}

// Job is one role on one invoice.
type Job struct {
	Invoice *Invoice
	Role    Role
	Slot    Slot
}

type JobFilter string

const (
	JobFilterAll      JobFilter = ""
	JobFilterPending  JobFilter = "pending"
	JobFilterComplete JobFilter = "complete"
)

func (f JobFilter) Valid() bool {
	return f == JobFilterAll || f == JobFilterPending || f == JobFilterComplete
}

// FilterJobs keeps the invoices matching f, preserving order.
func FilterJobs(invoices []*Invoice, f JobFilter) []*Invoice {
	if f == JobFilterAll {
		return invoices
	}

	out := make([]*Invoice, 0, len(invoices))

	for _, inv := range invoices {
		if inv.JobsComplete() == (f == JobFilterComplete) {
			out = append(out, inv)
		}
	}

	return out
}

// JobsFor lists every slot held by staffID across invoices.
func JobsFor(invoices []*Invoice, staffID uuid.UUID) []Job {
	var jobs []Job

	for _, inv := range invoices {
		for _, role := range []Role{RolePhotographer, RoleEditor} {
			s := inv.Slot(role)
			if s.AssignedTo(staffID) {
				jobs = append(jobs, Job{Invoice: inv, Role: role, Slot: *s})
			}
		}
	}

	return jobs
}

type StaffStat struct {
	StaffID   uuid.UUID
	StaffName string
	Total     int
	Completed int
	Pending   int
}

// Stats counts jobs per assignee, ordered by first appearance.
func Stats(invoices []*Invoice) []StaffStat {
	idx := make(map[uuid.UUID]int)

	var stats []StaffStat

	for _, inv := range invoices {
		for _, role := range []Role{RolePhotographer, RoleEditor} {
			s := inv.Slot(role)
			if s.AssigneeID == nil {
				continue
			}

			i, ok := idx[*s.AssigneeID]
			if !ok {
				i = len(stats)
				idx[*s.AssigneeID] = i
				stats = append(stats, StaffStat{StaffID: *s.AssigneeID, StaffName: s.AssigneeName})
			}

			stats[i].Total++
			if s.Status == JobDone {
				stats[i].Completed++
			} else {
				stats[i].Pending++
			}
		}
	}

	return stats
}
