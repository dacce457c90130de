package condition

import (
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/totegamma/permgraph/core"
)

// parseClock converts "HH:MM" into minutes since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid time of day %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// withinTimeOfDay checks now against [start, end]. When start > end the window
// wraps midnight and only the gap between end and start is rejected.
func withinTimeOfDay(start, end string, now time.Time) (bool, error) {
	current := minutesOfDay(now)

	if start == "" || end == "" {
		if start != "" {
			s, err := parseClock(start)
			if err != nil {
				return false, err
			}
			return current >= s, nil
		}
		e, err := parseClock(end)
		if err != nil {
			return false, err
		}
		return current <= e, nil
	}

	s, err := parseClock(start)
	if err != nil {
		return false, err
	}
	e, err := parseClock(end)
	if err != nil {
		return false, err
	}

	if s <= e {
		return s <= current && current <= e, nil
	}
	return current >= s || current <= e, nil
}

func onWeekday(days []int, now time.Time) bool {
	return slices.Contains(days, int(now.Weekday()))
}

func withinDateRange(r *core.DateRange, now time.Time) bool {
	if r.Start != nil && now.Before(*r.Start) {
		return false
	}
	if r.End != nil && now.After(*r.End) {
		return false
	}
	return true
}

func evalLocation(c *core.LocationClause, loc *core.Location) bool {
	if loc == nil {
		return false
	}
	if len(c.AllowedIPs) > 0 && !ipInList(loc.IP, c.AllowedIPs) {
		return false
	}
	if len(c.BlockedIPs) > 0 && ipInList(loc.IP, c.BlockedIPs) {
		return false
	}
	if len(c.AllowedCountries) > 0 && !containsFold(c.AllowedCountries, loc.Country) {
		return false
	}
	if len(c.AllowedRegions) > 0 && !containsFold(c.AllowedRegions, loc.Region) {
		return false
	}
	return true
}

// ipInList matches exact addresses and CIDR prefixes.
func ipInList(ip string, list []string) bool {
	if ip == "" {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	for _, entry := range list {
		if entry == ip {
			return true
		}
		if err != nil {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, perr := netip.ParsePrefix(entry)
			if perr == nil && prefix.Contains(addr.Unmap()) {
				return true
			}
			continue
		}
		other, perr := netip.ParseAddr(entry)
		if perr == nil && other.Unmap() == addr.Unmap() {
			return true
		}
	}
	return false
}

func evalResource(c *core.ResourceClause, rc core.RequestContext) bool {
	res := rc.Resource
	if res == nil {
		return true
	}
	if c.OwnerOnly && res.OwnerID != rc.UserID {
		return false
	}
	for name, allowed := range c.Attributes {
		value, ok := res.Attributes[name]
		if !ok {
			return false
		}
		if !valueInList(value, allowed) {
			return false
		}
	}
	if len(c.AllowedStates) > 0 && !contains(c.AllowedStates, res.State) {
		return false
	}
	return true
}

// inDepartment reports whether any node of the chain is a department listed in allowed.
func inDepartment(chain []core.Node, allowed []string) bool {
	for _, node := range chain {
		if node.Type == core.NodeTypeDepartment && contains(allowed, node.ID) {
			return true
		}
	}
	return false
}

func valueInList(value any, list []any) bool {
	str := fmt.Sprintf("%v", value)
	for _, item := range list {
		if fmt.Sprintf("%v", item) == str {
			return true
		}
	}
	return false
}

func contains(list []string, value string) bool {
	return slices.Contains(list, value)
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
