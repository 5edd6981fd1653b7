package content

import "github.com/refdeck/refdeck/internal/types"

var oopTopics = []types.Topic{
	{
		ID:       "encapsulation",
		Title:    "Encapsulation",
		Subtitle: "Hiding state behind a defined interface",
		Summary:  "Bundling data with the operations that maintain its invariants, and hiding the representation so callers can only act through the exposed interface.",
		Explanation: "The point is invariant protection, not secrecy: if a bank account's balance can " +
			"only change through Deposit and Withdraw, the no-overdraft rule is enforced in exactly one " +
			"place. Languages express it differently - private fields, unexported identifiers, opaque " +
			"handles - but the contract is the same: representation may change freely as long as the " +
			"interface holds.",
		Analogy: "A vending machine: you interact through the coin slot and buttons, never by reaching into the cash box; the internals can be rebuilt without retraining anyone.",
		KeyPoints: []string{
			"Couple state with the code that keeps it valid",
			"Callers depend on behavior, never on representation",
			"Enables refactoring: internals change, interface stays",
			"In Go, the unexported/exported split at package boundary is the mechanism",
		},
		Examples: []types.CodeExample{
			{
				Title:    "Invariant guarded by a constructor and methods",
				Language: "go",
				Code: `type Account struct {
    balance int64 // cents; never negative
}

func (a *Account) Withdraw(amount int64) error {
    if amount > a.balance {
        return errors.New("insufficient funds")
    }
    a.balance -= amount
    return nil
}`,
				Description: "The unexported field makes Withdraw the only path that can reduce the balance.",
			},
		},
		Questions: []types.QuestionAnswer{
			{Question: "Is a struct with getters and setters for every field encapsulated?", Answer: "Barely. Mechanical accessors expose the representation one hop removed. Real encapsulation exposes operations in the domain's vocabulary (Withdraw, not SetBalance)."},
		},
	},
	{
		ID:       "inheritance",
		Title:    "Inheritance vs Composition",
		Subtitle: "is-a hierarchies and their alternative",
		Summary:  "Inheritance lets a subclass reuse and specialize a parent class; composition builds behavior by assembling parts. Modern practice, and Go by design, favors composition.",
		Explanation: "Inheritance creates the tightest coupling in OOP: a subclass depends on its " +
			"parent's implementation details (the fragile base class problem), and deep hierarchies " +
			"force every variation into one tree. Composition keeps parts independent and swappable. " +
			"Go has no inheritance at all - struct embedding forwards methods without creating an " +
			"is-a relationship, and interfaces provide the polymorphism.",
		KeyPoints: []string{
			"Inheritance: code reuse plus subtype polymorphism in one mechanism",
			"Fragile base class: parent changes silently break subclasses",
			"Composition: assemble small parts, swap them independently",
			"Go embedding forwards methods but the embedded type is not a subtype",
			"Liskov substitution: a subtype must honor the parent's full contract",
		},
		Examples: []types.CodeExample{
			{
				Title:    "Embedding is forwarding, not subtyping",
				Language: "go",
				Code: `type Logger struct{ out io.Writer }

func (l *Logger) Log(msg string) { fmt.Fprintln(l.out, msg) }

type Server struct {
    *Logger // Server gains Log, but is not a Logger subtype
    addr string
}`,
				Description: "s.Log(...) works via promotion; there is no override dispatch through the embedded type.",
			},
		},
		Questions: []types.QuestionAnswer{
			{Question: "When is inheritance still the right tool?", Answer: "Stable, shallow hierarchies where the base class is designed for extension and the is-a relationship is genuine - GUI widget toolkits are the classic case. Anything modeled 'for reuse convenience' is better composed."},
		},
	},
	{
		ID:       "polymorphism",
		Title:    "Polymorphism",
		Subtitle: "One interface, many implementations",
		Summary:  "The ability for code to operate on values of different concrete types through a shared interface, with the concrete behavior chosen at runtime (dynamic dispatch) or compile time (generics).",
		Explanation: "Subtype polymorphism is what makes plugin points possible: the caller programs " +
			"against an interface and never changes when new implementations appear. Parametric " +
			"polymorphism (generics) instead reuses one algorithm across types known at compile time. " +
			"Go offers both: implicit interface satisfaction for the former, type parameters for the " +
			"latter - and the rule of thumb is interfaces for varying behavior, generics for varying data.",
		KeyPoints: []string{
			"Dynamic dispatch: the call site is fixed, the method body varies by concrete type",
			"Go interfaces are satisfied implicitly - no 'implements' declaration",
			"Parametric polymorphism (generics) is resolved at compile time",
			"Open/closed principle in practice: extend by adding implementations, not editing callers",
		},
		Examples: []types.CodeExample{
			{
				Title:    "A new notifier needs no caller changes",
				Language: "go",
				Code: `type Notifier interface {
    Notify(ctx context.Context, msg string) error
}

func alertAll(ctx context.Context, ns []Notifier, msg string) error {
    for _, n := range ns {
        if err := n.Notify(ctx, msg); err != nil {
            return fmt.Errorf("notify: %w", err)
        }
    }
    return nil
}`,
				Description: "alertAll compiles once; email, Slack and pager implementations plug in freely.",
			},
		},
	},
	{
		ID:       "abstraction",
		Title:    "Abstraction",
		Subtitle: "Modeling what matters, omitting what does not",
		Summary:  "Presenting a concept through its essential operations while suppressing irrelevant detail; the design activity that decides which interface a component exposes.",
		Explanation: "Abstraction is often conflated with encapsulation, but they answer different " +
			"questions: abstraction decides WHAT the interface says (a File has Read and Close, " +
			"regardless of disk, network or memory backing); encapsulation enforces that callers cannot " +
			"bypass it. Good abstractions are deep - a small interface hiding substantial machinery - " +
			"and leaky ones force callers to know what they were supposed to hide.",
		KeyPoints: []string{
			"Abstraction chooses the interface; encapsulation enforces it",
			"Deep modules: small surface, substantial implementation behind it",
			"Leaky abstraction: callers must understand hidden details to use it correctly",
			"io.Reader is the canonical deep abstraction: one method, endless backings",
		},
		Questions: []types.QuestionAnswer{
			{Question: "Give an example of a leaky abstraction.", Answer: "An ORM that presents objects but forces you to reason about N+1 query patterns and lazy-loading sessions - the relational machinery it claims to hide dictates how you must call it."},
		},
	},
}
