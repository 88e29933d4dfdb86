package main

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/erlandsona/assoc-set/set"
)

// Endpoint carries a slice field, so Go cannot hash it or use it as a
// map key. Structural equality is all the set needs.
type Endpoint struct {
	Service string
	Tags    []string
}

func (e Endpoint) Equal(o Endpoint) bool {
	return e.Service == o.Service && slices.Equal(e.Tags, o.Tags)
}

func main() {
	logger := log.WithFields(log.Fields{"demo": "assoc-set"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Level = log.InfoLevel

	east := set.FromList([]Endpoint{
		{Service: "auth", Tags: []string{"grpc", "internal"}},
		{Service: "billing", Tags: []string{"http"}},
		{Service: "search", Tags: []string{"http", "public"}},
		{Service: "auth", Tags: []string{"grpc", "internal"}},
	})
	west := set.FromList([]Endpoint{
		{Service: "search", Tags: []string{"http", "public"}},
		{Service: "reports", Tags: []string{"http", "internal"}},
	})

	logger.Info("east endpoints (duplicates collapsed): ", east.Size())
	logger.Info("west endpoints: ", west.Size())

	everywhere := east.Intersect(west)
	for _, e := range everywhere.ToList() {
		logger.WithFields(log.Fields{"service": e.Service, "tags": e.Tags}).
			Info("deployed in both regions")
	}

	eastOnly := east.Diff(west)
	for _, e := range eastOnly.ToList() {
		logger.WithFields(log.Fields{"service": e.Service, "tags": e.Tags}).
			Info("east only")
	}

	all := east.Union(west)
	names := set.Foldr(func(e Endpoint, acc []string) []string {
		return append(acc, e.Service)
	}, []string(nil), all)
	logger.Info("all services, oldest first: ", names)

	public := all.Filter(func(e Endpoint) bool {
		return slices.Contains(e.Tags, "public")
	})
	logger.Info("public services: ", public.Size())
}
