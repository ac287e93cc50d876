package registry

import (
	"os"
	"strings"
	"time"

	"github.com/karlseguin/ccache/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	lf "github.com/bigredeye/studreg/internal/logfield"
	"github.com/bigredeye/studreg/internal/models"
)

// Cached puts a roll lookup cache in front of a Store.
// The cache is dropped whenever the file size or mtime changes, so edits
// made by other processes are picked up on the next lookup. Misses are
// never cached. Entries are private copies, callers get their own.
type Cached struct {
	*Store

	cache  *ccache.Cache
	ttl    time.Duration
	stamp  fileStamp
	logger *zap.Logger
}

type fileStamp struct {
	size    int64
	modTime time.Time
}

var _ Registry = (*Cached)(nil)

func NewCached(store *Store, size int64, ttl time.Duration) *Cached {
	return &Cached{
		Store:  store,
		cache:  ccache.New(ccache.Configure().MaxSize(size)),
		ttl:    ttl,
		logger: store.logger.Named("cache"),
	}
}

func (c *Cached) Close() {
	c.cache.Stop()
}

func (c *Cached) refresh() error {
	info, err := os.Stat(c.path)
	if err != nil {
		return errors.Wrap(err, "Failed to stat registry")
	}
	stamp := fileStamp{size: info.Size(), modTime: info.ModTime()}
	if stamp != c.stamp {
		if c.stamp != (fileStamp{}) {
			c.logger.Debug("Registry file changed, dropping cache")
		}
		c.cache.Clear()
		c.stamp = stamp
	}
	return nil
}

func (c *Cached) FindByRoll(roll string) (*models.Student, error) {
	if err := c.refresh(); err != nil {
		return nil, err
	}

	key := strings.TrimSpace(roll)
	if item := c.cache.Get(key); item != nil && !item.Expired() {
		c.logger.Debug("Cache hit", lf.Roll(key))
		return item.Value().(*models.Student).Clone(), nil
	}

	student, err := c.Store.FindByRoll(key)
	if err != nil || student == nil {
		return student, err
	}
	c.cache.Set(key, student.Clone(), c.ttl)
	return student, nil
}

func (c *Cached) Enroll(student *models.Student) error {
	existing, err := c.FindByRoll(student.Roll)
	if err != nil {
		return err
	}
	if existing != nil {
		c.logger.Info("Roll already exists, skipping enrollment", lf.Roll(student.Roll))
		return &DuplicateRoll{Roll: student.Roll}
	}

	if err := c.append(student); err != nil {
		return err
	}
	c.logger.Info("Enrolled student", lf.Roll(student.Roll))
	if err := c.refresh(); err != nil {
		return err
	}
	c.cache.Set(student.Roll, student.Clone(), c.ttl)
	return nil
}
