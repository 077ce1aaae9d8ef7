// Package playback replays a recorded relaxation trace one step at a time.
//
// The engine's Result carries an append-only Steps sequence; playback turns
// it into the consumer-side view an animation player needs: a Cursor that
// applies one step per call and hands back a Frame — the display distances
// accumulated so far, the edge to highlight (Improvement steps only), and a
// latched cycle flag. Timing policy stays entirely with the caller: the
// Cursor is a pull API and never sleeps or ticks.
//
// What a step does to the display state:
//
//   - Improvement — overwrites the node's display distance and highlights
//     the edge Predecessor→Node.
//   - Tie — leaves the display untouched; the step itself still surfaces so
//     the player can flash the tied predecessor.
//   - CycleWitness — latches Frame.CycleSeen without touching any display
//     distance: the witnessed candidate is evidence of divergence, not a
//     better value to show.
//
// Typical loop:
//
//	cur := playback.New(res.Steps, playback.WithSource("A"))
//	for {
//	    frame, ok := cur.Next()
//	    if !ok {
//	        break
//	    }
//	    render(frame) // one frame per UI tick
//	}
//
// Thread safety: a Cursor is not safe for concurrent use; replay on one
// goroutine. Frames are snapshots and may be retained freely.
package playback
