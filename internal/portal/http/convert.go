package http

import (
	"time"

	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/pkg/portalsdk"
)

func toUser(u domain.User) portalsdk.User {
	return portalsdk.User{ID: u.ID, Name: u.Name, Email: u.Email, TenantID: u.TenantID, Role: u.Role}
}

func toTenant(t domain.Tenant) portalsdk.Tenant {
	return portalsdk.Tenant{
		ID:                t.ID,
		Name:              t.Name,
		Logo:              t.Logo,
		Email:             t.Email,
		Phone:             t.Phone,
		Address:           t.Address,
		Industry:          t.Industry,
		Credits:           t.Credits,
		TotalMessagesSent: t.TotalMessagesSent,
	}
}

func toLead(l domain.Lead) portalsdk.Lead {
	return portalsdk.Lead{
		ID:          l.ID,
		Name:        l.Name,
		Email:       l.Email,
		Phone:       l.Phone,
		Status:      l.Status,
		Score:       l.Score,
		Source:      l.Source,
		Property:    l.Property,
		Budget:      l.Budget,
		Notes:       l.Notes,
		AssignedTo:  l.AssignedTo,
		LastContact: l.LastContact.Format(time.RFC3339),
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}

func toLeads(leads []domain.Lead) []portalsdk.Lead {
	out := make([]portalsdk.Lead, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLead(l))
	}
	return out
}

func toCampaign(c domain.Campaign) portalsdk.Campaign {
	return portalsdk.Campaign{
		ID:             c.ID,
		Name:           c.Name,
		Type:           c.Type,
		TemplateName:   c.TemplateName,
		TargetAudience: c.TargetAudience,
		Message:        c.Message,
		Status:         c.Status,
		MessagesSent:   c.MessagesSent,
		Opens:          c.Opens,
		Replies:        c.Replies,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}

func toCampaigns(campaigns []domain.Campaign) []portalsdk.Campaign {
	out := make([]portalsdk.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, toCampaign(c))
	}
	return out
}

func toAppointment(a domain.Appointment) portalsdk.Appointment {
	return portalsdk.Appointment{
		ID:       a.ID,
		LeadID:   a.LeadID,
		LeadName: a.LeadName,
		Date:     a.Date,
		Time:     a.Time,
		Type:     a.Type,
		Status:   a.Status,
		Property: a.Property,
		Agent:    a.Agent,
		Notes:    a.Notes,
	}
}

func toAppointments(appts []domain.Appointment) []portalsdk.Appointment {
	out := make([]portalsdk.Appointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, toAppointment(a))
	}
	return out
}

func toStaff(members []domain.Staff) []portalsdk.StaffMember {
	out := make([]portalsdk.StaffMember, 0, len(members))
	for _, m := range members {
		out = append(out, portalsdk.StaffMember{
			ID:       m.ID,
			Name:     m.Name,
			Email:    m.Email,
			Role:     m.Role,
			Avatar:   m.Avatar,
			Status:   m.Status,
			Phone:    m.Phone,
			JoinedAt: m.JoinedAt.Format(time.RFC3339),
		})
	}
	return out
}

func toTransactions(txns []domain.Transaction) []portalsdk.Transaction {
	out := make([]portalsdk.Transaction, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransaction(t))
	}
	return out
}

func toTransaction(t domain.Transaction) portalsdk.Transaction {
	return portalsdk.Transaction{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      t.Amount,
		Credits:     t.Credits,
		Description: t.Description,
		Status:      t.Status,
		Reference:   t.Reference,
		Date:        t.Date.Format(time.RFC3339),
	}
}
