package blacklist

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/idna"

	"phishguard/internal/domain"
	"phishguard/internal/ports"
)

const DefaultReason = "User reported"

// Checker owns the in-memory set of known-bad domains and keeps it in step
// with the blacklist store.
type Checker struct {
	repo ports.BlacklistRepository
	log  logrus.FieldLogger

	mu      sync.RWMutex
	domains map[string]struct{}

	// serialises AddDomain so the persisted row and the set never diverge
	writeMu sync.Mutex
}

// New builds a Checker from the seed list plus every persisted entry.
func New(ctx context.Context, repo ports.BlacklistRepository, seed []string, log logrus.FieldLogger) (*Checker, error) {
	c := &Checker{repo: repo, log: log, domains: make(map[string]struct{}, len(seed))}
	for _, d := range seed {
		if n, err := Normalize(d); err == nil {
			c.domains[n] = struct{}{}
		}
	}
	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Refresh merges persisted entries into the set. Entries are never removed.
func (c *Checker) Refresh(ctx context.Context) error {
	entries, err := c.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load blacklist: %w", err)
	}
	added := 0
	c.mu.Lock()
	for _, e := range entries {
		n, err := Normalize(e.Domain)
		if err != nil {
			continue
		}
		if _, ok := c.domains[n]; !ok {
			c.domains[n] = struct{}{}
			added++
		}
	}
	c.mu.Unlock()
	if added > 0 {
		c.log.WithField("added", added).Info("blacklist refreshed")
	}
	return nil
}

// IsBlacklisted reports whether rawURL's host, or any parent domain of it,
// is blacklisted. Unparseable input is never blacklisted.
func (c *Checker) IsBlacklisted(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	_, ok := c.MatchHost(u.Hostname())
	return ok
}

// MatchHost checks host and each right-aligned label suffix of it, returning
// the blacklisted domain that matched.
func (c *Checker) MatchHost(host string) (string, bool) {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" {
		return "", false
	}
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for candidate := host; ; {
		if _, ok := c.domains[candidate]; ok {
			return candidate, true
		}
		i := strings.IndexByte(candidate, '.')
		if i < 0 {
			return "", false
		}
		candidate = candidate[i+1:]
	}
}

// AddDomain persists domain and adds it to the set before returning.
// Adding a domain that is already known is a no-op.
func (c *Checker) AddDomain(ctx context.Context, rawDomain, reason string) error {
	d, err := Normalize(rawDomain)
	if err != nil {
		return err
	}
	if strings.TrimSpace(reason) == "" {
		reason = DefaultReason
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.contains(d) {
		c.log.WithField("domain", d).Debug("domain already blacklisted")
		return nil
	}
	inserted, err := c.repo.Insert(ctx, domain.BlacklistEntry{Domain: d, Reason: reason, AddedDate: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("persist blacklist entry %s: %w", d, err)
	}

	c.mu.Lock()
	c.domains[d] = struct{}{}
	c.mu.Unlock()

	if inserted {
		c.log.WithFields(logrus.Fields{"domain": d, "reason": reason}).Info("added to blacklist")
	}
	return nil
}

// Len is the number of domains in the set.
func (c *Checker) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.domains)
}

func (c *Checker) contains(d string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.domains[d]
	return ok
}

// Normalize lower-cases d, strips surrounding space and a trailing dot, and
// converts internationalised names to their ASCII form. Names idna rejects
// (underscores, for one) are kept as typed.
func Normalize(d string) (string, error) {
	d = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(d)), ".")
	if d == "" {
		return "", domain.NewInputError(d, "empty domain", nil)
	}
	if strings.ContainsAny(d, " /:?#@") {
		return "", domain.NewInputError(d, "not a domain name", nil)
	}
	if ascii, err := idna.Lookup.ToASCII(d); err == nil {
		return ascii, nil
	}
	return d, nil
}
