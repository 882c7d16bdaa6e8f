// Package ru recognizes Russian date words — позавчера, вчера, сегодня,
// завтра, послезавтра, weekday names short (пн…вс) and full (понедельник…
// воскресенье) — and composes them with the numeric recognizers into the
// Russian bundle.
//
// Russian numeric dates are written day-first, so Bundle is the only entry
// point; there is no month-first variant.
//
// All word matching is case-insensitive under Unicode simple folding, so
// "Вчера" and "ВЧЕРА" both match. The vocabulary lives in vocab.yaml,
// embedded at build time and loaded once at init.
package ru
