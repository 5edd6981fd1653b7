package content

import "github.com/refdeck/refdeck/internal/types"

var patternTopics = []types.Topic{
	{
		ID:       "singleton",
		Title:    "Singleton",
		Subtitle: "One instance, global access, lazy creation",
		Summary:  "Ensures a class has a single instance and provides a global access point to it; widely used for shared resources and widely criticized for the hidden coupling it creates.",
		Explanation: "The hard part is thread-safe lazy initialization - double-checked locking bugs " +
			"made it famous. Go solves that with sync.Once. The deeper criticism stands regardless of " +
			"language: a singleton is global mutable state wearing a pattern name, it hides dependencies " +
			"from function signatures and makes tests order-dependent. Prefer constructing one instance " +
			"at the composition root and passing it down.",
		KeyPoints: []string{
			"Guarantees a single instance plus global access",
			"sync.Once gives race-free lazy initialization in Go",
			"Hidden dependency: callers' signatures lie about what they use",
			"Test pain: shared state leaks between tests",
			"Alternative: construct once in main, inject everywhere",
		},
		Examples: []types.CodeExample{
			{
				Title:    "sync.Once idiom",
				Language: "go",
				Code: `var (
    pool     *ConnPool
    poolOnce sync.Once
)

func Pool() *ConnPool {
    poolOnce.Do(func() {
        pool = newConnPool()
    })
    return pool
}`,
				Description: "Do runs the function exactly once even under concurrent first calls.",
			},
		},
		Questions: []types.QuestionAnswer{
			{Question: "Why is the singleton considered an anti-pattern by many?", Answer: "It smuggles a dependency past every function signature, couples all callers to one concrete type, and carries mutable state across tests. The instance count is rarely the actual requirement - the requirement is shared access, which plain injection satisfies."},
		},
	},
	{
		ID:       "factory-method",
		Title:    "Factory",
		Subtitle: "Deciding the concrete type behind a constructor",
		Summary:  "A creation function that returns an interface, choosing the concrete implementation from its arguments; callers stay ignorant of which type they received.",
		Explanation: "In class-heavy languages this splits into Factory Method and Abstract Factory " +
			"hierarchies; in Go it is usually just a function returning an interface. The value is " +
			"localizing the type decision: one switch on a scheme or driver name, and every caller " +
			"is insulated from new implementations.",
		KeyPoints: []string{
			"Return an interface, hide the concrete type",
			"Centralizes the 'which implementation' decision",
			"New variants touch the factory only, not the callers",
			"database/sql drivers and url scheme dispatch are everyday examples",
		},
		Examples: []types.CodeExample{
			{
				Title:    "Scheme-dispatching factory",
				Language: "go",
				Code: `func OpenStore(dsn string) (Store, error) {
    switch {
    case strings.HasPrefix(dsn, "sqlite:"):
        return newSQLiteStore(strings.TrimPrefix(dsn, "sqlite:"))
    case strings.HasPrefix(dsn, "mem:"):
        return newMemStore(), nil
    default:
        return nil, fmt.Errorf("unknown store scheme in %q", dsn)
    }
}`,
				Description: "Callers hold a Store; adding a postgres backend changes only this switch.",
			},
		},
	},
	{
		ID:       "observer",
		Title:    "Observer",
		Subtitle: "Publish state changes to decoupled subscribers",
		Summary:  "A subject maintains a list of observers and notifies them on state changes; the subject knows only the notification interface, never the subscribers' identities.",
		Explanation: "This is the pattern behind event systems, UI data binding and message buses. " +
			"The costs show at scale: notification order is usually unspecified, a slow observer can " +
			"stall the subject (push model), and forgotten unsubscribes leak. In Go the channel is a " +
			"natural observer mechanism - each subscriber owns a buffered channel and the subject " +
			"drops or skips slow consumers deliberately.",
		KeyPoints: []string{
			"Decouples event producers from consumers",
			"Push vs pull: send the data, or send a ping and let observers fetch",
			"Slow-consumer policy must be explicit: block, buffer, or drop",
			"Unsubscribe paths are where the leaks hide",
		},
		Examples: []types.CodeExample{
			{
				Title:    "Channel-based subscribers with drop policy",
				Language: "go",
				Code: `func (b *Bus) Publish(ev Event) {
    b.mu.RLock()
    defer b.mu.RUnlock()
    for _, sub := range b.subs {
        select {
        case sub <- ev:
        default: // subscriber is behind; drop rather than stall the bus
        }
    }
}`,
				Description: "The non-blocking send makes the slow-consumer policy visible in code.",
			},
		},
	},
	{
		ID:       "strategy",
		Title:    "Strategy",
		Subtitle: "Swappable algorithms behind one interface",
		Summary:  "Encapsulates a family of interchangeable algorithms so the choice can vary independently of the code that uses them.",
		Explanation: "Where a class language builds a strategy interface and implementation classes, " +
			"Go often needs only a function type: a sort's less function, an HTTP client's retry " +
			"policy, a cache's eviction rule. Reach for an interface instead of a function when the " +
			"strategy carries state or multiple related operations.",
		KeyPoints: []string{
			"Select behavior at runtime without conditionals at every call site",
			"Function-typed fields are the lightweight Go form",
			"Interfaces when the strategy has state or several methods",
			"sort.Slice and http.RoundTripper are stdlib strategies",
		},
		Examples: []types.CodeExample{
			{
				Title:    "Backoff as a function field",
				Language: "go",
				Code: `type Client struct {
    Backoff func(attempt int) time.Duration
}

func ExponentialBackoff(attempt int) time.Duration {
    return time.Duration(1<<attempt) * 100 * time.Millisecond
}`,
				Description: "Tests inject a zero-delay backoff; production wires the exponential one.",
			},
		},
	},
	{
		ID:       "decorator",
		Title:    "Decorator",
		Subtitle: "Layering behavior around an existing interface",
		Summary:  "Wraps an object with another object of the same interface, adding behavior before or after delegating; layers compose freely without subclassing.",
		Explanation: "HTTP middleware is the decorator pattern at industrial scale: logging, auth, " +
			"compression and tracing each wrap a handler and return a handler. The same shape covers " +
			"io.Reader wrappers (buffering, gzip, tee). Ordering matters and is explicit in the " +
			"wrapping sequence, which is both the power and the trap.",
		KeyPoints: []string{
			"Same interface in, same interface out - wrappers stack",
			"http middleware: func(http.Handler) http.Handler",
			"io.Reader chains: gzip over buffer over file",
			"Layer order is semantic: auth-then-log differs from log-then-auth",
		},
		Examples: []types.CodeExample{
			{
				Title:    "Handler middleware",
				Language: "go",
				Code: `func withLogging(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        start := time.Now()
        next.ServeHTTP(w, r)
        log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
    })
}`,
				Description: "withLogging(withAuth(mux)) reads inside-out: auth runs first, logging times the whole.",
			},
		},
	},
}
