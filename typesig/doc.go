// Package typesig turns JVM type and method metadata into two textual
// renderings: a fully qualified canonical form and a simplified form in
// which functional interfaces collapse into arrow notation, e.g.
//
//	java.util.stream.Stream<T>#map: (java.util.stream.Stream<T>, java.util.function.Function<? super T, ? extends R>) -> java.util.stream.Stream<R>
//	(Stream<T>, (T -> R)) -> Stream<R>
//
// The package does not read metadata itself. Providers implement the Type,
// Class and Method interfaces; see packages java and javastub.
package typesig
