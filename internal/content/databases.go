package content

import "github.com/refdeck/refdeck/internal/types"

var databaseTopics = []types.Topic{
	{
		ID:       "acid-transactions",
		Title:    "ACID Transactions",
		Subtitle: "Atomicity, Consistency, Isolation, Durability",
		Summary:  "The guarantees a transactional database makes: grouped operations apply entirely or not at all, respect invariants, do not observe each other's partial state, and survive crashes once committed.",
		Explanation: "Atomicity and durability come from write-ahead logging: changes hit the log " +
			"before the data pages, so a crash replays or rolls back cleanly. Isolation is the " +
			"negotiable one - serializable is the gold standard but most engines default to weaker " +
			"levels (read committed, snapshot) that trade anomalies for throughput. Knowing which " +
			"anomalies your level permits (dirty reads, non-repeatable reads, phantoms, write skew) " +
			"is the practical skill.",
		KeyPoints: []string{
			"Atomicity: all-or-nothing, implemented via write-ahead log",
			"Isolation levels trade anomalies for concurrency",
			"Snapshot isolation permits write skew; serializable does not",
			"Durability: committed means fsynced to the log",
		},
		Examples: []types.CodeExample{
			{
				Title:    "Transfer inside one transaction",
				Language: "sql",
				Code: `BEGIN;
UPDATE accounts SET balance = balance - 100 WHERE id = 1;
UPDATE accounts SET balance = balance + 100 WHERE id = 2;
COMMIT;`,
				Description: "A crash between the updates rolls both back; no state exists where the money left one account without reaching the other.",
			},
		},
		Questions: []types.QuestionAnswer{
			{Question: "What is write skew and which isolation level allows it?", Answer: "Two transactions each read a shared condition (e.g. 'at least one doctor on call'), then write disjoint rows that jointly violate it. Snapshot isolation allows it because neither write conflicts; serializable forbids it."},
		},
	},
	{
		ID:       "indexes",
		Title:    "Database Indexes",
		Subtitle: "Trading write cost and space for read speed",
		Summary:  "Auxiliary structures, typically B-trees, that let the engine find rows matching a predicate without scanning the table; every index slows writes and consumes space.",
		Explanation: "A B-tree index keeps keys sorted in a shallow, wide tree, so point lookups and " +
			"range scans touch a handful of pages. Composite indexes follow the leftmost-prefix rule: " +
			"an index on (a, b) serves filters on a, and on a-and-b, but not on b alone. A covering " +
			"index contains every column the query needs, skipping the table fetch entirely. The " +
			"query planner decides per query whether an index beats a scan - low-selectivity " +
			"predicates often do not.",
		Analogy: "A book's index: finding 'polymorphism' via the back pages beats reading front-to-back, but every edit to the book means updating the index too.",
		KeyPoints: []string{
			"B-tree: O(log n) lookups, efficient range scans",
			"Leftmost-prefix rule governs composite index usability",
			"Covering index answers the query without touching the table",
			"Each index adds write amplification on insert/update/delete",
			"EXPLAIN shows whether the planner actually uses it",
		},
		Examples: []types.CodeExample{
			{
				Title:    "Composite and covering",
				Language: "sql",
				Code: `CREATE INDEX idx_orders_user_date ON orders (user_id, created_at);

-- Served entirely by the index above plus an INCLUDE column:
CREATE INDEX idx_orders_cover
    ON orders (user_id, created_at) INCLUDE (total);`,
				Description: "The first serves WHERE user_id = ? AND created_at > ?; the second also answers SELECT total for that predicate without a heap fetch.",
			},
		},
		Questions: []types.QuestionAnswer{
			{Question: "Why might the planner ignore an index?", Answer: "When the predicate matches a large fraction of the table, random page fetches via the index cost more than one sequential scan. Stale statistics and non-sargable expressions (functions on the column) also defeat it."},
		},
	},
	{
		ID:       "normalization",
		Title:    "Normalization",
		Subtitle: "Structuring schemas to store each fact once",
		Summary:  "A series of normal forms that progressively remove redundancy from a relational schema so updates cannot leave contradictory copies of the same fact.",
		Explanation: "The working rule through third normal form: every non-key column must depend on " +
			"the key, the whole key, and nothing but the key. Denormalization deliberately reintroduces " +
			"redundancy for read performance - precomputed aggregates, duplicated lookup values - and " +
			"is a fine trade as long as something owns keeping the copies consistent.",
		KeyPoints: []string{
			"1NF: atomic values, no repeating groups",
			"2NF: no partial dependency on a composite key",
			"3NF: no transitive dependencies between non-key columns",
			"Update anomalies are the failure mode normalization prevents",
			"Denormalize consciously, with an owner for consistency",
		},
		Questions: []types.QuestionAnswer{
			{Question: "When would you denormalize?", Answer: "Read-heavy paths where the join or aggregate cost dominates: keeping an order_total on the order row, or a follower_count on the profile, refreshed transactionally or by a background job that tolerates brief staleness."},
		},
	},
	{
		ID:       "sql-vs-nosql",
		Title:    "SQL vs NoSQL",
		Subtitle: "Choosing a data model and its guarantees",
		Summary:  "Relational databases offer schemas, joins and ACID transactions; NoSQL families (document, key-value, wide-column, graph) trade parts of that for horizontal scale, flexible shapes, or specialized access patterns.",
		Explanation: "The real axis is not SQL syntax but guarantees versus distribution. Relational " +
			"engines center on multi-row transactions and ad-hoc queries. Document stores keep an " +
			"aggregate's data together and scale by sharding on its key. Key-value stores are the " +
			"fastest and dumbest. The CAP theorem frames the distributed trade: under a network " +
			"partition a system chooses availability or consistency, not both. Default to relational " +
			"until a measured access pattern says otherwise.",
		KeyPoints: []string{
			"Relational: joins, constraints, multi-row ACID",
			"Document: aggregate-per-key, schema carried by the data",
			"Key-value: O(1) access, no query model",
			"CAP: during a partition, pick availability or consistency",
			"Polyglot persistence: different stores for different access patterns",
		},
		Questions: []types.QuestionAnswer{
			{Question: "Does 'NoSQL' mean no transactions?", Answer: "Not anymore - several document stores offer multi-document transactions, and Spanner-class systems are distributed AND serializable. But transactions spanning shards always cost coordination, so aggregate-local design still wins."},
		},
	},
}
