package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/metasearch"
)

// Run executes the classify command.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	classifier := metasearch.NewClassifier(deps.Extractor)

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	var failed int
	for _, u := range c.URLs {
		domain, err := deps.Extractor.RegistrableDomain(u)
		if err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", u, metasearch.ErrorMessage(err))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", domain, classifier.CategoryOfDomain(domain), u)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return metasearch.Errorf(metasearch.EDOMAIN, "%d of %d URLs could not be classified", failed, len(c.URLs))
	}
	return nil
}
