// Package startup coordinates the startup of a set of independent services
// through a strict two-phase sequence: Initialize, then Start.
//
// An application wiring up several components by hand could look like:
//
//     cache := NewCache()
//     if err := cache.Warm(); err != nil { ... }
//     feed := NewFeed()
//     if err := feed.Connect(); err != nil { ... }
//     go feed.Pump()
//     go NewAPI(cache, feed).Serve()
//
// This is pretty simple code for simple projects, but the ordering is
// implicit and fragile: nothing guarantees that every component finished its
// preparation before the first one starts serving, and components that only
// care about "the application is up" have no hook to attach to.
//
// Using startup, the components register themselves and the sequence is
// enforced by the coordinator:
//
//     c := startup.NewCoordinator()
//     c.Register("cache", cache)  // implements Initializer
//     c.Register("feed", feed)    // implements Initializer and Starter
//     c.Register("api", api)      // implements Starter
//
//     c.OnStart(func() { log.Println("application is up") })
//
//     if err := c.StartUp(); err != nil { ... }
//
// StartUp runs every Initialize routine concurrently and blocks until the
// last of them has returned; only then are the Start routines launched,
// also concurrently but without being waited on. Out of the box, this
// provides you with:
//
//     • A one-time all-or-nothing barrier between the two phases
//     • Register-time detection of duplicate or late registrations
//     • AwaitStart and OnStart to be notified when startup completes,
//       immediately when it already has
//     • An aggregated report of the errors returned by service routines
//     • Logging by providing your logger, with a zap adapter included
//     • Observers to listen to state changes and service failures
//
// The coordinator deliberately provides no fault isolation between services:
// there is no dependency ordering, no retry, no timeout. A routine that never
// returns stalls the barrier forever.
package startup
