package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"client-portal-service/internal/chatbot/core/domain"
	"client-portal-service/internal/chatbot/core/ports"
)

var (
	ErrChatbotAccessDenied = errors.New("no active chatbot subscription")
	ErrClientNotFound      = errors.New("client not found")
)

const (
	reportPageSize   = 10
	reportTimeLayout = "02/01/2006 15:04:05"

	// Rows whose label contains this phrase are kept in the paginated list
	// but excluded from the top-ten ranking.
	mainMenuReturnPhrase = "volver al menú principal"

	anonymousUser = "Anonymous"
)

type GetUsageReportInput struct {
	ClientID int64
	Page     int // 1-based; out-of-range values clamp

	// RequireSubscription gates the client-facing view; the operator view
	// skips the check.
	RequireSubscription bool
}

type GetUsageReportUseCase struct {
	store     ports.ChatbotStorePort
	access    ports.ClientAccessPort
	directory ports.ClientDirectoryPort
	now       func() time.Time
}

func NewGetUsageReportUseCase(store ports.ChatbotStorePort, access ports.ClientAccessPort, directory ports.ClientDirectoryPort) *GetUsageReportUseCase {
	return &GetUsageReportUseCase{
		store:     store,
		access:    access,
		directory: directory,
		now:       time.Now,
	}
}

// optionGroup is one transient aggregation bucket, keyed by
// "{option} - {label}" and discarded after the report is built.
type optionGroup struct {
	count    int
	users    map[string]struct{}
	label    string
	lastSeen string
}

func (uc *GetUsageReportUseCase) Execute(ctx context.Context, in GetUsageReportInput) (*domain.UsageReport, error) {
	if in.RequireSubscription {
		ok, err := uc.access.HasActiveChatbot(ctx, in.ClientID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrChatbotAccessDenied
		}
	} else {
		ok, err := uc.directory.ClientExists(ctx, in.ClientID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrClientNotFound
		}
	}

	s, err := uc.store.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Close(ctx)

	idx, err := BuildMenuIndex(ctx, s)
	if err != nil {
		return nil, err
	}

	interactions, err := s.ListInteractions(ctx)
	if err != nil {
		return nil, err
	}

	rows := aggregate(interactions, idx)

	report := buildReport(rows, in.Page)
	report.GeneratedAt = uc.now().Format(reportTimeLayout)
	return report, nil
}

// aggregate groups the raw interactions by (option, resolved label) and
// returns one row per group, ordered by count descending. Ties keep the
// order in which the groups were first built.
func aggregate(interactions []domain.Interaction, idx *MenuIndex) []domain.ReportRow {
	groups := make(map[string]*optionGroup)
	var keys []string

	for _, rec := range interactions {
		user := rec.UserID
		if user == "" {
			user = anonymousUser
		}

		label, ok := resolveLabel(rec.Option, idx)
		if !ok {
			label = fmt.Sprintf("Option %s", rec.Option)
		}

		key := rec.Option + " - " + label
		g := groups[key]
		if g == nil {
			g = &optionGroup{users: make(map[string]struct{})}
			groups[key] = g
			keys = append(keys, key)
		}

		g.count++
		g.users[user] = struct{}{}
		g.label = label

		// The raw value is compared against the previously stored formatted
		// value. Kept as observed in production; see DESIGN.md.
		if g.lastSeen == "" || rec.Timestamp > g.lastSeen {
			g.lastSeen = formatTimestamp(rec.Timestamp)
		}
	}

	rows := make([]domain.ReportRow, 0, len(keys))
	for _, key := range keys {
		g := groups[key]

		users := make([]string, 0, len(g.users))
		for u := range g.users {
			users = append(users, u)
		}
		sort.Strings(users)

		rows = append(rows, domain.ReportRow{
			Label:       g.label,
			TotalCount:  g.count,
			UniqueUsers: len(g.users),
			Users:       users,
			LastSeen:    g.lastSeen,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalCount > rows[j].TotalCount
	})
	return rows
}

func buildReport(rows []domain.ReportRow, page int) *domain.UsageReport {
	total := 0
	union := make(map[string]struct{})
	for _, r := range rows {
		total += r.TotalCount
		for _, u := range r.Users {
			union[u] = struct{}{}
		}
	}

	average := 0.0
	if len(union) > 0 {
		// Exact halves round away from zero (1.25 becomes 1.3); see DESIGN.md.
		average = math.Round(float64(total)/float64(len(union))*10) / 10
	}

	topTen := make([]domain.ReportRow, 0, reportPageSize)
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Label), mainMenuReturnPhrase) {
			continue
		}
		topTen = append(topTen, r)
		if len(topTen) == reportPageSize {
			break
		}
	}

	totalPages := (len(rows) + reportPageSize - 1) / reportPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * reportPageSize
	end := start + reportPageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	return &domain.UsageReport{
		TotalInteractions: total,
		TotalRows:         len(rows),
		TotalUniqueUsers:  len(union),
		AveragePerUser:    average,
		TopTen:            topTen,
		Page:              page,
		TotalPages:        totalPages,
		Rows:              rows[start:end],
	}
}

// formatTimestamp renders an ISO-8601 instant as DD/MM/YYYY HH:MM:SS. A
// value that cannot be parsed is returned untouched; an absent value
// becomes "N/A".
func formatTimestamp(raw string) string {
	if raw == "" {
		return "N/A"
	}
	t, err := parseISOInstant(raw)
	if err != nil {
		return raw
	}
	return t.Format(reportTimeLayout)
}

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseISOInstant(raw string) (time.Time, error) {
	// A trailing Z means UTC.
	s := strings.TrimSpace(raw)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %q", raw)
}
