package platform

import (
	"github.com/aretw0/eegcleaner/pkg/adapters/fs"
	"github.com/aretw0/eegcleaner/pkg/cleaner"
	"github.com/aretw0/eegcleaner/pkg/core"
	"github.com/aretw0/eegcleaner/pkg/git"
)

// New wires a cleaner service from options.
func New(opts ...Option) *cleaner.Service {
	o := parse(opts)
	return cleaner.NewService(newStore(o), o.logger)
}

// NewStore wires the log store alone.
func NewStore(opts ...Option) core.Store {
	return newStore(parse(opts))
}

func parse(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func newStore(o *options) core.Store {
	if o.store != nil {
		return o.store
	}
	return fs.NewStore(fs.Config{
		FileName: o.fileName,
		Version:  newStoreVersion(o),
		Logger:   o.logger,
	})
}

func newStoreVersion(o *options) core.VersionProvider {
	if o.version != nil {
		return o.version
	}
	return git.NewClient(o.versionDir, o.logger)
}
