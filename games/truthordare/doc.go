/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package truthordare is the game engine behind the Truth or Dare table.
//
// How to play
//   - Pick a language and a category (Kids, Teen, or Adult once everyone confirms they are 18+)
//   - Enter 2 to 10 players; names are unique regardless of case
//   - Optionally write custom truths and dares, and choose whether to mix in the built-in ones
//   - Spin the pointer; whoever it lands on picks Truth, Dare or Random
//   - They have 60 seconds to answer, then mark it Done or Forfeit
//
// Prompts are dealt from a shuffled pool per kind so nothing repeats until
// every prompt has come up once. Nobody is picked three times running while
// there are at least three players.
package truthordare
