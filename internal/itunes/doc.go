// Package itunes provides a client for the iTunes Search API.
//
// The client issues a single fixed query (movies matching SearchTerm, limited to
// SearchLimit results) and decodes the response into model.Movie values.
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client := itunes.NewClient(logger)
//
//	// Synchronous form
//	movies, err := client.FetchMovies(ctx)
//
//	// Future form: the channel yields exactly one result and is then closed
//	result := <-client.Fetch(ctx)
//
// # Error Handling
//
// Every error returned by the client matches ErrFetchFailed via errors.Is and is
// one of:
//
//   - TransportError: the request never produced a response (DNS, dial, timeout, reset)
//   - StatusError: the server answered with a non-2xx status
//   - DecodeError: the body was not a valid search response
//
// No attempt is retried.
package itunes
