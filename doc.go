// Package vtable deduplicates per-type operation tables behind a
// process-wide, concurrency-safe registry, and issues proof-carrying tokens
// for them.
//
// # Why a registry?
//
// An operation table binds generic operations — clone, debug rendering,
// equality, hashing — to one concrete type while exposing a uniform erased
// calling convention. Building one is cheap but not free, and correctness
// demands that a table only ever dispatches over values of the exact type
// it was specialised for. The registry solves both at once:
//
//   - exactly one table exists per (value type, table kind) pair, built
//     lazily on first resolution and cached for the rest of the process;
//   - the only way to obtain a table is [Resolve], which returns a
//     [Token] recording — in the type system, at no runtime cost — which
//     value type the table was specialised for.
//
// Consumers such as the ched package accept only a matching token when
// pairing a table with a boxed value, which rules out ad hoc construction
// of a mismatched (value, table) pair.
//
// # Concurrency
//
// The check-then-insert sequence of [Registry.GetOrCreate] executes under a
// single critical section, so concurrent resolutions of the same key elect
// one winner and everyone else reuses its table. The lock is held only
// while resolving; dispatch through a resolved table takes no lock, since
// tables are immutable after construction.
//
// This package exports:
//   - [Registry], [Singleton], [NewRegistry] — table storage and lifecycle
//   - [Token], [Resolve], [ResolveIn] — typed resolution
//   - [Key] — the (value type, table kind) specialisation key
package vtable
