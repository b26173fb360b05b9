// Package config provides configuration management for vinylfinder.
//
// Settings are layered, lowest precedence first:
//
//  1. Compiled defaults (DefaultSettings)
//  2. An optional config.yaml, searched for in ~/.config/vinylfinder
//     and the working directory, or named explicitly
//  3. The DISCOGS_API_KEY environment variable (binds to api.token)
//
// # Basic Usage
//
//	settings, err := config.Load("")
//	if err != nil {
//	    // a config file existed but could not be read
//	}
//
//	fetcher := http.NewClient(settings.ToFetchConfig())
//	client := discogs.NewClient(fetcher, settings.ToDiscogsConfig())
//
// A missing config file is not an error; the defaults already describe
// a working unauthenticated setup against the production API.
package config
