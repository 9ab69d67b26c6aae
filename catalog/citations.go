// SPDX-License-Identifier: MIT

package catalog

const citeMGH = `@article{More:1981,
  author  = {Mor{\'e}, Jorge J. and Garbow, Burton S. and Hillstrom, Kenneth E.},
  title   = {Testing Unconstrained Optimization Software},
  journal = {ACM Trans. Math. Softw.},
  year    = {1981},
  volume  = {7},
  number  = {1},
  pages   = {17--41},
  doi     = {10.1145/355934.355936}
}
`

const citeDennisSchnabel = `@book{Dennis:1996,
  author    = {Dennis, J. E. and Schnabel, Robert B.},
  title     = {Numerical Methods for Unconstrained Optimization and Nonlinear Equations},
  publisher = {SIAM},
  year      = {1996},
  doi       = {10.1137/1.9781611971200}
}
`

const citeBroyden = `@article{Broyden:1965,
  author  = {Broyden, C. G.},
  title   = {A Class of Methods for Solving Nonlinear Simultaneous Equations},
  journal = {Math. Comp.},
  year    = {1965},
  volume  = {19},
  pages   = {577--593},
  doi     = {10.1090/S0025-5718-1965-0198670-6}
}
`

const citeGrippo = `@article{Grippo:1991,
  author  = {Grippo, L. and Lampariello, F. and Lucidi, S.},
  title   = {A Class of Nonmonotone Stabilization Methods in Unconstrained Optimization},
  journal = {Numer. Math.},
  year    = {1991},
  volume  = {59},
  number  = {1},
  pages   = {779--805}
}
`

const citeKelley = `@book{Kelley:1995,
  author    = {Kelley, C. T.},
  title     = {Iterative Methods for Linear and Nonlinear Equations},
  publisher = {SIAM},
  year      = {1995},
  doi       = {10.1137/1.9781611970944}
}
`

const citeHimmelblau = `@book{Himmelblau:1972,
  author    = {Himmelblau, D. M.},
  title     = {Applied Nonlinear Programming},
  publisher = {McGraw-Hill},
  year      = {1972}
}
`

const citeLaCruz = `@techreport{LaCruz:2004,
  author      = {La Cruz, William and Mart{\'i}nez, Jos{\'e} Mario and Raydan, Marcos},
  title       = {Spectral Residual Method without Gradient Information for Solving Large-Scale Nonlinear Systems: Theory and Experiments},
  institution = {Universidad Central de Venezuela},
  number      = {RT-04-08},
  year        = {2004}
}
`

const citeHilbert = `@article{Hilbert:1894,
  author  = {Hilbert, David},
  title   = {Ein Beitrag zur Theorie des Legendre'schen Polynoms},
  journal = {Acta Math.},
  year    = {1894},
  volume  = {18},
  pages   = {155--159}
}
`
