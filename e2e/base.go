package e2e

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"quickchat/domain"
	"quickchat/repositories"
	"quickchat/services"
	"quickchat/sink"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BaseStoreSuite opens stores over one durable directory, so a scenario can
// restart the session and observe what survived.
type BaseStoreSuite struct {
	suite.Suite
	Config Config
	// Backend overrides Config.Backend when set
	Backend string

	dir string
	log *slog.Logger
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseStoreSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Backend != "" {
		s.Config.Backend = s.Backend
	}
	s.log = logs.GetLoggerFromLevel(slog.LevelError)
}

// SetupTest gives every test its own durable directory.
func (s *BaseStoreSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

// Session is one process lifetime: a factory, a store and its sinks.
type Session struct {
	Factory  *domain.MessageFactory
	Store    *services.MessageStore
	Compose  *services.ComposeService
	Timeline *sink.Timeline
	close    func()
}

func (s *Session) Close() {
	s.close()
}

// OpenSession wires a store the way the binary does, over the suite's durable directory.
func (s *BaseStoreSuite) OpenSession() *Session {
	var repository repositories.IMessageRepository
	closers := []func() error{}

	switch s.Config.Backend {
	case "badger":
		db, err := badger.Open(badger.DefaultOptions(filepath.Join(s.dir, "badger")).WithLoggingLevel(badger.ERROR))
		s.Require().NoError(err)
		closers = append(closers, db.Close)
		repository = repositories.NewBadgerMessageRepository(db, s.log)
	case "json":
		repository = repositories.NewJSONMessageRepository(filepath.Join(s.dir, repositories.DefaultStoreFilepath), s.log)
	default:
		s.FailNow(fmt.Sprintf("unknown backend %q", s.Config.Backend))
	}

	index, err := repositories.OpenMessageIndex("", s.log)
	s.Require().NoError(err)
	closers = append(closers, index.Close)

	timeline := sink.NewTimeline("kyl_1", sink.DefaultTimelineLimit)
	store := services.NewMessageStore(s.log, repository, index,
		sink.NewDiskSink(repository, s.log, s.Config.PruneOnDelete),
		sink.NewIndexSink(index, s.log),
		timeline,
	)
	factory := domain.NewMessageFactory(domain.NewRandomIDGenerator())
	return &Session{
		Factory:  factory,
		Store:    store,
		Compose:  services.NewComposeService(factory, store, nil, s.log),
		Timeline: timeline,
		close: func() {
			for i := len(closers) - 1; i >= 0; i-- {
				s.Require().NoError(closers[i]())
			}
		},
	}
}

// Step prints a header and runs fn, making scenario logs readable.
func (s *BaseStoreSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s [%s] ======", name, s.Config.Backend)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	fn()
}
