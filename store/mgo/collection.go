package mgo

import (
	"github.com/globalsign/mgo"
	"github.com/go-logr/logr"
)

type collection struct {
	*mgo.Collection
	log logr.Logger
}

func (c *collection) copySession() *collection {
	db := c.Database
	return &collection{
		Collection: db.Session.Copy().DB(db.Name).C(c.Name),
		log:        c.log,
	}
}

func (c *collection) closeSession() {
	c.Database.Session.Close()
}

// ensureLogger fills in a discarding logger when WithLogger was omitted,
// so log calls never hit the zero Logger's nil sink
func (c *collection) ensureLogger() {
	if c.log.GetSink() == nil {
		c.log = logr.Discard()
	}
}

type collectionOption func(*collection)

// WithLogger sets the logger of the store
func WithLogger(l logr.Logger) collectionOption {
	return func(c *collection) {
		c.log = l
	}
}
