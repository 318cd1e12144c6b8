package longform

import (
	"fmt"
	"path/filepath"
	str "strings"

	log "github.com/sirupsen/logrus"

	sqlite "github.com/glebarez/sqlite"
	gorm "gorm.io/gorm"
)

type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
}

// Persistence records finished Compilations so the runs tooling can list
// and aggregate them later. Optional: a nil PersistenceConfig in the tool
// config just skips recording.
type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	var pragmas str.Builder
	pragma_count := len(config.SQLitePragmas) - 1
	for i, prag := range config.SQLitePragmas {
		pragmas.WriteString(fmt.Sprintf("_pragma=%s", prag))
		if i < pragma_count {
			pragmas.WriteRune('&')
		}
	}

	var options str.Builder
	option_count := len(config.SQLiteOptions) - 1
	for i, opt := range config.SQLiteOptions {
		options.WriteString(opt)
		if i < option_count {
			options.WriteRune('&')
		}
	}

	var path str.Builder
	path.WriteString(filepath.Join(config.Path, config.Name))
	if pragmas.Len() > 0 {
		path.WriteRune('?')
		path.WriteString(pragmas.String())
		if options.Len() > 0 {
			path.WriteRune('&')
			path.WriteString(options.String())
		}
	} else if options.Len() > 0 {
		path.WriteRune('?')
		path.WriteString(options.String())
	}

	db, err := gorm.Open(sqlite.Open(path.String()), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	db = db.Session(&gorm.Session{PrepareStmt: true})

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Persistence) initialize() error {
	return p.DB.AutoMigrate(&Compilation{})
}

func (p *Persistence) Shutdown() {
	if sqldb, err := p.DB.DB(); err != nil {
		log.Errorf("Failed to retrieve raw DB: %v", err)
	} else {
		sqldb.Close()
	}
}

func (p *Persistence) Create(compilation *Compilation) (uint, error) {
	if compilation == nil {
		return 0, fmt.Errorf("Compilation cannot be nil")
	}

	if result := p.DB.Create(compilation); result.Error != nil {
		return 0, fmt.Errorf("Failed to call gorm.Create(): %w", result.Error)
	}

	return compilation.ID, nil
}

// LoadRecent returns up to limit Compilations, newest first.
func (p *Persistence) LoadRecent(limit int) ([]*Compilation, error) {
	var compilations []*Compilation
	result := p.DB.Order("id DESC").Limit(limit).Find(&compilations)
	if result.Error != nil {
		return nil, fmt.Errorf("Failed to load compilations: %w", result.Error)
	}
	return compilations, nil
}

// Load returns a single Compilation by id.
func (p *Persistence) Load(id uint) (*Compilation, error) {
	compilation := &Compilation{}
	result := p.DB.First(compilation, id)
	if result.Error != nil {
		return nil, fmt.Errorf("Failed to load compilation [%d]: %w", id, result.Error)
	}
	return compilation, nil
}
