// Package grove renders a procedural landscape: a sky, a field of grass and
// fifteen recursively branching trees, drawn once into an off-screen raster.
//
// The raster is a [Canvas] backed by a [gg] pixmap. Display lives in the
// viewer sub-package, which shows the finished image in an [Ebitengine]
// window.
//
// # Quick start
//
//	res, err := grove.Render(grove.DefaultSceneConfig(), grove.NewRandomSource())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer res.Canvas.Close()
//	fmt.Println(res.Label()) // Render time: 12 ms
//
// # Trees
//
// Each tree is drawn by a [BranchRenderer]. A branch strokes one segment
// and fans out into three children whose angle and length are perturbed by
// the [Source]. Recursion stops after [SceneConfig.MaxGeneration]. Stroke
// color and width for every generation come from a [PenCache], which builds
// each pen once per render.
//
// # Determinism
//
// Every random draw comes from the Source passed to [Render] or
// [BuildScene]. Two renders given sources from [NewSource] with the same
// seed produce identical pixels.
//
// [gg]: https://github.com/gogpu/gg
// [Ebitengine]: https://ebitengine.org
package grove
