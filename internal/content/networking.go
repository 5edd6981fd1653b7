package content

import "github.com/refdeck/refdeck/internal/types"

// networkingTopics covers the core protocol material. Order is
// roughly bottom-up through the stack.
var networkingTopics = []types.Topic{
	{
		ID:       "osi-model",
		Title:    "OSI Model",
		Subtitle: "Seven layers of network abstraction",
		Summary:  "A conceptual model that standardizes network communication into seven layers, from physical transmission up to application protocols.",
		Explanation: "Each layer serves the layer above it and is served by the layer below. " +
			"In practice the TCP/IP model (four or five layers) is what real stacks implement, " +
			"but the OSI vocabulary survives in everyday engineering speech: an 'L4 load balancer' " +
			"operates on transport-layer data (TCP/UDP), an 'L7 proxy' understands application " +
			"protocols like HTTP.",
		Analogy: "Sending a letter: you write the content (application), put it in an envelope with an address (network), and the postal service moves it via trucks and planes (physical) - each party only cares about its own layer.",
		KeyPoints: []string{
			"Layer 1-2: physical transmission and framing (Ethernet, Wi-Fi)",
			"Layer 3: routing between networks (IP)",
			"Layer 4: end-to-end delivery (TCP, UDP)",
			"Layer 7: application protocols (HTTP, DNS, SMTP)",
			"Encapsulation: each layer wraps the payload of the layer above",
		},
		Resources: []types.Resource{
			{Title: "RFC 1122 - Requirements for Internet Hosts", URL: "https://www.rfc-editor.org/rfc/rfc1122", Description: "The layering model actually used on the internet"},
		},
		Questions: []types.QuestionAnswer{
			{Question: "Why do load balancers get described as L4 or L7?", Answer: "An L4 balancer routes on transport-layer data (IP + port) without inspecting payloads; an L7 balancer parses the application protocol (e.g. HTTP paths and headers) and can route per request."},
		},
	},
	{
		ID:       "tcp-vs-udp",
		Title:    "TCP vs UDP",
		Subtitle: "Reliable streams versus fire-and-forget datagrams",
		Summary:  "The two transport protocols of the internet: TCP provides ordered, reliable byte streams with congestion control; UDP provides unordered, unreliable datagrams with minimal overhead.",
		Explanation: "TCP establishes a connection with a three-way handshake (SYN, SYN-ACK, ACK), " +
			"numbers every byte, retransmits losses, and backs off under congestion. UDP adds only " +
			"ports and an optional checksum on top of IP. Applications that need low latency and can " +
			"tolerate loss (games, voice, DNS queries) choose UDP; anything that needs exact delivery " +
			"(file transfer, most APIs) rides on TCP. QUIC rebuilds TCP-like reliability over UDP to " +
			"escape head-of-line blocking.",
		KeyPoints: []string{
			"TCP: connection-oriented, ordered, reliable, congestion-controlled",
			"UDP: connectionless, no ordering or delivery guarantees",
			"TCP handshake costs one round trip before data flows",
			"Head-of-line blocking: one lost TCP segment stalls everything behind it",
			"QUIC (HTTP/3) layers streams over UDP to avoid that stall",
		},
		Examples: []types.CodeExample{
			{
				Title:    "TCP and UDP servers",
				Language: "go",
				Code: `// TCP: accept yields a connected stream per client.
ln, _ := net.Listen("tcp", ":9000")
conn, _ := ln.Accept()

// UDP: one socket, datagrams carry their sender address.
pc, _ := net.ListenPacket("udp", ":9000")
buf := make([]byte, 1500)
n, addr, _ := pc.ReadFrom(buf)
pc.WriteTo(buf[:n], addr)`,
				Description: "The API shapes mirror the protocols: streams for TCP, addressed packets for UDP.",
			},
		},
		Questions: []types.QuestionAnswer{
			{Question: "Why does DNS use UDP for queries?", Answer: "A query and reply fit in single datagrams, so a connection handshake would double the latency for no benefit. DNS falls back to TCP for large responses and zone transfers."},
			{Question: "What is head-of-line blocking?", Answer: "In TCP, data is a single ordered stream; if one segment is lost, delivered-but-later segments cannot be handed to the application until the retransmission arrives."},
		},
	},
	{
		ID:       "dhcp",
		Title:    "DHCP",
		Subtitle: "Dynamic Host Configuration Protocol",
		Summary:  "The protocol that hands a joining host its IP address, default gateway, DNS servers and lease duration, removing any need for manual per-machine network configuration.",
		Explanation: "A client without an address broadcasts a DISCOVER; servers answer with an OFFER; " +
			"the client broadcasts a REQUEST for one offer and the chosen server confirms with an ACK. " +
			"The DORA exchange runs over UDP (ports 67/68) because the client has no address to build " +
			"a connection from. Leases are renewed at half-life directly with the owning server.",
		Analogy: "Checking into a hotel: you ask at the desk (DISCOVER), get offered a room (OFFER), accept it (REQUEST), and receive the key with a checkout date (ACK with lease).",
		KeyPoints: []string{
			"DORA: Discover, Offer, Request, Acknowledge",
			"Runs over UDP broadcast - the client has no IP yet",
			"Leases expire; clients renew at T1 (50% of lease)",
			"Also distributes gateway, DNS servers, subnet mask",
			"DHCP relay agents forward broadcasts across subnets",
		},
		Resources: []types.Resource{
			{Title: "RFC 2131 - Dynamic Host Configuration Protocol", URL: "https://www.rfc-editor.org/rfc/rfc2131", Description: "The protocol definition"},
		},
		Questions: []types.QuestionAnswer{
			{Question: "Why does the client broadcast the REQUEST instead of unicasting it?", Answer: "Several servers may have made offers; the broadcast lets the losing servers see which offer was taken so they can return the unused addresses to their pools."},
		},
	},
	{
		ID:       "dns",
		Title:    "DNS",
		Subtitle: "Domain Name System",
		Summary:  "The distributed, hierarchical database that resolves human-readable names to IP addresses and other records.",
		Explanation: "Resolution walks the hierarchy: a recursive resolver asks a root server, which " +
			"delegates to the TLD servers (.com), which delegate to the domain's authoritative servers. " +
			"Every answer carries a TTL and is cached at each hop, so most lookups never leave the local " +
			"resolver. Record types cover addresses (A/AAAA), aliases (CNAME), mail routing (MX) and " +
			"free-form data (TXT).",
		Analogy: "A chain of phone directories: the national directory tells you which city directory to consult, which tells you the street directory that finally has the number.",
		KeyPoints: []string{
			"Hierarchy: root -> TLD -> authoritative nameservers",
			"Recursive resolvers cache answers per TTL",
			"A/AAAA map names to IPv4/IPv6; CNAME aliases one name to another",
			"Queries are UDP port 53; TCP for large answers and zone transfers",
			"Low TTLs enable fast failover at the cost of more lookups",
		},
		Examples: []types.CodeExample{
			{
				Title:    "Looking up records",
				Language: "go",
				Code: `ips, err := net.LookupIP("example.com")
if err != nil {
    var dnsErr *net.DNSError
    if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
        // NXDOMAIN - the name does not exist
    }
}`,
				Description: "Resolver errors distinguish 'name does not exist' from transport failures.",
			},
		},
		Questions: []types.QuestionAnswer{
			{Question: "What happens when you type a URL into a browser?", Answer: "The classic walkthrough: DNS resolution (cache, resolver, root/TLD/authoritative), TCP handshake, TLS handshake, HTTP request, response rendering. Interviewers probe depth at each step."},
			{Question: "Why can a CNAME not coexist with other records at the same name?", Answer: "A CNAME says 'this name is an alias for that one' - any other record at the same name would be ambiguous with the records of the target, so the standards forbid the mix (which is why zone apexes cannot be CNAMEs)."},
		},
	},
	{
		ID:       "http",
		Title:    "HTTP",
		Subtitle: "The application protocol of the web",
		Summary:  "A stateless request/response protocol: methods express intent (GET, POST, PUT, DELETE), status codes express outcome, headers carry metadata, and versions 2 and 3 multiplex requests over one connection.",
		Explanation: "Statelessness is the defining property - every request must carry all the context " +
			"the server needs (cookies, tokens), which is what lets any replica serve any request. " +
			"HTTP/1.1 reuses connections but serializes responses; HTTP/2 multiplexes frames for many " +
			"streams over one TCP connection; HTTP/3 moves the framing onto QUIC so one lost packet " +
			"stalls only its own stream.",
		KeyPoints: []string{
			"Methods: GET is safe and idempotent, POST is neither, PUT/DELETE are idempotent",
			"Status classes: 2xx success, 3xx redirection, 4xx client error, 5xx server error",
			"Caching is controlled by Cache-Control, ETag and conditional requests",
			"HTTP/2: one connection, many concurrent streams, header compression",
			"HTTP/3: same semantics over QUIC/UDP",
		},
		Questions: []types.QuestionAnswer{
			{Question: "Why does idempotency of PUT matter in practice?", Answer: "Clients and proxies may retry a timed-out request. Retrying an idempotent PUT is safe; retrying a POST may duplicate the effect, which is why creation APIs often accept client-chosen idempotency keys."},
		},
	},
}
