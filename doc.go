// Package aml is a declarative keyframe animation engine for [Ebitengine].
//
// Animations are described in AML, a small XML language. An Animation is an
// ordered list of Scenes; each Scene interpolates position, size, three
// rotation angles and color over a time window, and the next Scene picks up
// where the previous one ended:
//
//	<AML>
//	  <Animation title="slide-in">
//	    <Scene title="enter">
//	      <Time start="0" end="0.5"/>
//	      <CoordX standard="OBJECT" from="-200" to="0" type="DECELERATE"/>
//	      <Alpha from="0" to="255"/>
//	    </Scene>
//	    <Scene title="wobble">
//	      <Time start="0.2" end="0.8"/>
//	      <AngleZ from="0" to="15" type="RETURN"/>
//	    </Scene>
//	  </Animation>
//	</AML>
//
// # Quick start
//
//	sched := aml.NewFrameScheduler(60)
//	engine := aml.NewEngine(aml.Config{Scheduler: sched})
//	if err := engine.LoadFile("anim.aml"); err != nil {
//		log.Fatal(err)
//	}
//
//	box := aml.NewNode("box", 100, 100, 64, 64)
//	engine.Bind(box, "slide-in", nil, nil)
//	engine.Run()
//
//	game := aml.NewGame(engine, sched, 640, 480)
//	game.AddNode(box)
//	aml.Run(game, aml.RunConfig{Title: "AML", Width: 640, Height: 480})
//
// # Reference frames
//
// Geometry deltas are resolved once per Scene activation according to the
// axis standard: SCREEN values are absolute, OBJECT values are offsets from
// the target's bounds at bind time, and CURRENT values are offsets from
// where the previous Scene left the target. Elements left out of a Scene
// hold the current value.
//
// # Renderers
//
// The engine never draws. Each tick it hands every playing target an
// immutable [Transform] and a color through an [Applier]. [NodeApplier]
// drives the built-in [Node]; the ecs module writes into a Donburi world.
// One tick after an Animation completes, [Applier.Release] takes the target
// out of transform mode.
//
// [Ebitengine]: https://ebitengine.org
package aml
