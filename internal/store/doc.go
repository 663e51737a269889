// Package store manages the on-disk tajweed cache.
//
// The cache is a plain directory tree with one file per verse:
//
//	tajweed_data/
//	├── .lock
//	├── 1/
//	│   ├── 1.html
//	│   ├── ...
//	│   └── 7.html
//	└── 2/
//	    └── ...
//
// A verse file's existence is the only cache-hit signal; its content is never
// validated or refreshed. Files are written to a temporary name and renamed into
// place, so an interrupted run never leaves a partial verse file behind and the
// next run resumes where the previous one stopped.
//
// # Concurrency
//
// Use [Store.Lock] around a sweep so two processes never fill the same tree at
// once. The lock is an flock on the .lock file in the cache root.
package store
