// Package redis exposes Redis lists as pipeline sinks and sources.
//
// It wraps go-redis with xduce logging, configuration conventions and error
// codes. A ListSink is an xform.Appender that buffers output and pushes it
// with RPUSH on Flush; ListValues and ListIterator read a list back.
//
//	client, err := redis.New(redis.Config{Addr: "localhost:6379"}, log)
//	sink := client.ListSink("results")
//	xform.Copy(sink, t, lines)
//	if err := sink.Flush(ctx); err != nil { ... }
package redis
