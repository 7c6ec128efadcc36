// Package transform implements geometric transforms: cropping, placement,
// translation, reflection, scaling, rotation and shearing.
//
// Resampling transforms operate on floating images. Rotation and shearing
// use inverse mapping: every output pixel is mapped back through the
// inverted Affine matrix and the source is sampled there, so the result has
// no holes. Output pixels that map outside the source stay zero.
package transform
