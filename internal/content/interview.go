package content

import "github.com/refdeck/refdeck/internal/types"

var interviewTopics = []types.Topic{
	{
		ID:       "big-o",
		Title:    "Big-O Notation",
		Subtitle: "Growth rates, not stopwatch times",
		Summary:  "Describes how an algorithm's cost grows with input size, ignoring constants and lower-order terms; the shared vocabulary for comparing approaches before measuring them.",
		Explanation: "Big-O bounds the shape of the curve: O(n log n) sorting beats O(n^2) sorting " +
			"eventually, regardless of constant factors - but 'eventually' can be far away, which is " +
			"why insertion sort still handles the small partitions inside production quicksorts. " +
			"Amortized analysis covers operations that are occasionally expensive but cheap on " +
			"average, like append doubling a slice's backing array.",
		KeyPoints: []string{
			"Common classes: O(1), O(log n), O(n), O(n log n), O(n^2), O(2^n)",
			"Constants are ignored by the notation but not by the CPU",
			"Amortized O(1): slice append, hash table insert",
			"Space complexity counts too - recursion depth is space",
			"Hash lookup is O(1) average, O(n) adversarial worst case",
		},
		Examples: []types.CodeExample{
			{
				Title:    "Two complexities for one problem",
				Language: "go",
				Code: `// O(n^2): check every pair
func hasDupSlow(xs []int) bool {
    for i := range xs {
        for j := i + 1; j < len(xs); j++ {
            if xs[i] == xs[j] {
                return true
            }
        }
    }
    return false
}

// O(n) time, O(n) space: trade memory for speed
func hasDup(xs []int) bool {
    seen := make(map[int]struct{}, len(xs))
    for _, x := range xs {
        if _, ok := seen[x]; ok {
            return true
        }
        seen[x] = struct{}{}
    }
    return false
}`,
				Description: "The classic interview move: name the brute force, then buy time with space.",
			},
		},
		Questions: []types.QuestionAnswer{
			{Question: "Why is slice append amortized O(1) when growing copies everything?", Answer: "Doubling the capacity means a copy of n elements happens only after n cheap appends, so the copy cost spreads to O(1) per append over any sequence of operations."},
		},
	},
	{
		ID:       "hash-tables",
		Title:    "Hash Tables",
		Subtitle: "The default answer to 'how do I look this up fast'",
		Summary:  "Maps keys to buckets via a hash function for average O(1) insert, lookup and delete; collision handling and resize policy determine the real-world behavior.",
		Explanation: "Chaining keeps a small list per bucket; open addressing probes for the next " +
			"free slot and is cache-friendlier. Load factor drives resizing: past a threshold the " +
			"table doubles and rehashes. Go's map is a chained design with incremental growth, " +
			"deliberately randomized iteration order, and a hard rule that concurrent writes panic - " +
			"share one behind a mutex or use sync.Map for append-mostly caches.",
		KeyPoints: []string{
			"Average O(1), degraded by collisions toward O(n)",
			"Chaining vs open addressing are the two collision strategies",
			"Load factor triggers resize-and-rehash",
			"Go map iteration order is intentionally randomized",
			"Concurrent map writes panic; guard with a mutex",
		},
		Questions: []types.QuestionAnswer{
			{Question: "Why does Go randomize map iteration order?", Answer: "To stop programs from accidentally depending on an order the implementation never promised. The randomization surfaces that bug in development instead of during a runtime upgrade."},
		},
	},
	{
		ID:       "goroutines-channels",
		Title:    "Goroutines and Channels",
		Subtitle: "Go's concurrency primitives",
		Summary:  "Goroutines are cheap runtime-scheduled threads; channels are typed conduits that communicate and synchronize at once. The motto: share memory by communicating.",
		Explanation: "A goroutine starts with a few kilobytes of stack and the runtime multiplexes " +
			"them over OS threads, so tens of thousands are routine. An unbuffered channel send blocks " +
			"until a receiver is ready, making the handoff a synchronization point; buffered channels " +
			"decouple producer and consumer up to the buffer size. The recurring interview failure " +
			"modes: goroutine leaks (blocked forever on a channel nobody reads), closing a channel " +
			"from the receiver side, and forgetting that only the sender may close.",
		KeyPoints: []string{
			"Goroutines: ~2KB initial stack, multiplexed over OS threads",
			"Unbuffered send blocks until receive - a rendezvous",
			"close signals 'no more values'; only the sender closes",
			"select waits on multiple channel operations",
			"Leak pattern: goroutine parked on a channel with no counterpart",
		},
		Examples: []types.CodeExample{
			{
				Title:    "Worker pool with clean shutdown",
				Language: "go",
				Code: `func process(jobs <-chan Job) <-chan Result {
    results := make(chan Result)
    var wg sync.WaitGroup
    for i := 0; i < 4; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            for j := range jobs { // exits when jobs is closed
                results <- j.Run()
            }
        }()
    }
    go func() {
        wg.Wait()
        close(results) // sender side closes
    }()
    return results
}`,
				Description: "Closing the jobs channel drains the pool; the WaitGroup gates closing results.",
			},
		},
		Questions: []types.QuestionAnswer{
			{Question: "Buffered or unbuffered - how do you choose?", Answer: "Unbuffered by default: the rendezvous gives you synchronization for free and surfaces backpressure immediately. Buffer only when you can name the reason for the capacity, like smoothing a known burst size."},
		},
	},
	{
		ID:       "rest-api-design",
		Title:    "REST API Design",
		Subtitle: "Resources, verbs, and the contracts between them",
		Summary:  "Model the domain as resources addressed by URLs, manipulate them with standard HTTP methods, and let status codes and headers carry the protocol-level outcome.",
		Explanation: "The discipline is in the contracts: plural nouns for collections " +
			"(/users/42/orders), methods for verbs, and honest status codes - 404 for a missing " +
			"resource, 409 for a state conflict, 422 for a well-formed but invalid body. Pagination, " +
			"filtering and versioning decisions made early are nearly impossible to retrofit. " +
			"Idempotency keys on POST endpoints turn client retries from a duplication hazard into " +
			"a safe operation.",
		KeyPoints: []string{
			"URLs name resources; methods carry the action",
			"Status codes are part of the contract, not decoration",
			"Paginate from day one: cursor beats offset at scale",
			"Version via URL path or Accept header - pick one and hold it",
			"Idempotency keys make POST retry-safe",
		},
		Questions: []types.QuestionAnswer{
			{Question: "PUT vs PATCH?", Answer: "PUT replaces the full resource representation and is idempotent by definition; PATCH applies a partial change and is only idempotent if the patch format makes it so. If in doubt, PUT with the complete object is the simpler contract."},
		},
	},
	{
		ID:       "caching-strategies",
		Title:    "Caching Strategies",
		Subtitle: "Invalidation is the hard part",
		Summary:  "Keeping hot data in a faster tier: the strategy choices are where the cache sits, how it fills (cache-aside, read-through), how writes flow (write-through, write-behind), and how entries die (TTL, explicit invalidation, LRU eviction).",
		Explanation: "Cache-aside is the workhorse: look in the cache, miss, fetch from the source, " +
			"populate, return. Its classic failure is the stampede - a popular key expires and a " +
			"thundering herd hits the database at once; the fixes are request coalescing " +
			"(singleflight), jittered TTLs, or serving stale while refreshing. Write-behind buys " +
			"write latency at the price of possible loss on crash. Every cached byte is a bet that " +
			"staleness within its TTL is acceptable - make that bet explicitly per data class.",
		KeyPoints: []string{
			"Cache-aside: app owns the fill; simplest and most common",
			"Write-through: consistent but every write pays the slow path",
			"Stampede control: singleflight, TTL jitter, stale-while-revalidate",
			"Eviction: LRU approximations dominate in practice",
			"Name the acceptable staleness per data class, then set TTLs",
		},
		Examples: []types.CodeExample{
			{
				Title:    "Cache-aside with singleflight",
				Language: "go",
				Code: `func (s *Service) Profile(ctx context.Context, id string) (*Profile, error) {
    if p, ok := s.cache.Get(id); ok {
        return p, nil
    }
    v, err, _ := s.group.Do(id, func() (any, error) {
        p, err := s.db.LoadProfile(ctx, id)
        if err != nil {
            return nil, err
        }
        s.cache.Set(id, p, 5*time.Minute)
        return p, nil
    })
    if err != nil {
        return nil, fmt.Errorf("load profile %s: %w", id, err)
    }
    return v.(*Profile), nil
}`,
				Description: "Concurrent misses for one key collapse into a single database load.",
			},
		},
	},
}
