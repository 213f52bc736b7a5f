package generate

import (
	"github.com/flosch/pongo2/v4"
)

// Templates emit markdown, so autoescaping stays off.

var frontmatterTemplate = pongo2.Must(pongo2.FromString(`{% autoescape off %}---
type: docs
title: "{{ title }}"
linkTitle: "{{ title }}"
weight: {{ weight }}
description: >-
  {{ description }}
---
{% endautoescape %}`))

var contentTemplate = pongo2.Must(pongo2.FromString(`{% autoescape off %}# {{ title }}

{{ description }}

## Architecture

![{{ title }} architecture](./img/sample.png)

## Description

{{ description }}

This jumpstart deploys a fully functional {{ title|lower }} scenario into your Microsoft Fabric workspace. The scenario uses {{ workloads|join:" and " }} workloads to demonstrate real-world patterns.
{% endautoescape %}`))

const rootIndexMarkdown = "---\ntype: docs\n---\n"

const catalogIndexMarkdown = "---\ntype: docs\ntitle: \"Jumpstart Scenarios\"\nlinkTitle: \"Jumpstart Scenarios\"\nweight: 2\n---\n"
